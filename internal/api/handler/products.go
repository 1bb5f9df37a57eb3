package handler

import (
	"net/http"

	"github.com/nolafood/restaurant-analytics-api/internal/usecases/reporting"
	"github.com/nolafood/restaurant-analytics-api/pkg/log"
)

// GetTopProducts retorna os cinco produtos com maior faturamento
func GetTopProducts(service reporting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		products, err := service.TopProducts(r.Context())
		if err != nil {
			writeReportingError(w, logger, err, "Erro ao buscar ranking de produtos")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(products); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta do ranking de produtos")
		}
	})
}
