package handler

import (
	"net/http"

	"github.com/nolafood/restaurant-analytics-api/internal/usecases/reporting"
	"github.com/nolafood/restaurant-analytics-api/pkg/log"
)

// GetHourlySales retorna a contagem de pedidos concluídos por hora do dia
func GetHourlySales(service reporting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		hours, err := service.HourlySales(r.Context())
		if err != nil {
			writeReportingError(w, logger, err, "Erro ao buscar vendas por hora")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(hours); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta das vendas por hora")
		}
	})
}
