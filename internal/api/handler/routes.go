package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/nolafood/restaurant-analytics-api/infrastructure/database/postgres"
	"github.com/nolafood/restaurant-analytics-api/internal/api/handler/router"
	"github.com/nolafood/restaurant-analytics-api/internal/domain"
	"github.com/nolafood/restaurant-analytics-api/internal/usecases/reporting"
	"github.com/nolafood/restaurant-analytics-api/pkg/apiErrors"
	"github.com/nolafood/restaurant-analytics-api/pkg/log"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Root() []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: RootHandler(),
		},
	}
}

func Healthcheck(conn postgres.Conn) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(conn),
		},
	}
}

func Metrics(service reporting.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/api/metrics/general",
			Method:  http.MethodGet,
			Handler: GetGeneralMetrics(service),
		},
		{
			Path:    "/api/metrics/revenue_period",
			Method:  http.MethodGet,
			Handler: GetRevenueByPeriod(service),
		},
	}
}

func Products(service reporting.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/api/products/top",
			Method:  http.MethodGet,
			Handler: GetTopProducts(service),
		},
	}
}

func Sales(service reporting.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/api/sales/hourly",
			Method:  http.MethodGet,
			Handler: GetHourlySales(service),
		},
	}
}

// writeReportingError traduz os erros do serviço para o status HTTP mais
// estreito: banco indisponível vira 503, o restante vira 500
func writeReportingError(w http.ResponseWriter, logger log.Logger, err error, message string) {
	if errors.Is(err, domain.ErrStoreUnavailable) {
		logger.WithError(err).Error("Banco de dados indisponível")
		apiErrors.WriteError(w, apiErrors.ErrCommunication, "Serviço de Banco de Dados Indisponível", nil)
		return
	}

	logger.WithError(err).Error(message)
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, message, nil)
}
