package handler

import (
	"net/http"

	"github.com/nolafood/restaurant-analytics-api/internal/domain"
	"github.com/nolafood/restaurant-analytics-api/internal/usecases/reporting"
	"github.com/nolafood/restaurant-analytics-api/pkg/apiErrors"
	"github.com/nolafood/restaurant-analytics-api/pkg/log"
)

// GetGeneralMetrics retorna o resumo de vendas concluídas dos últimos 180 dias
func GetGeneralMetrics(service reporting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		metrics, err := service.GeneralMetrics(r.Context())
		if err != nil {
			writeReportingError(w, logger, err, "Erro ao buscar métricas gerais")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(metrics); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta das métricas gerais")
		}
	})
}

// GetRevenueByPeriod retorna o faturamento por dia da semana dentro da janela
// escolhida pelo parâmetro period. O período é validado antes de qualquer query
func GetRevenueByPeriod(service reporting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		rawPeriod := r.URL.Query().Get("period")
		period, err := domain.ParsePeriod(rawPeriod)
		if err != nil {
			logger.WithField("period", rawPeriod).Warn("Período inválido recebido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Período inválido.", nil)
			return
		}

		revenue, err := service.RevenueByPeriod(r.Context(), period)
		if err != nil {
			writeReportingError(w, logger, err, "Erro ao buscar faturamento por período")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(revenue); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta do faturamento por período")
		}
	})
}
