package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nolafood/restaurant-analytics-api/internal/domain"
	"github.com/nolafood/restaurant-analytics-api/internal/usecases/reporting/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetGeneralMetrics(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(service *mocks.MockService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "Métricas calculadas - deve responder o resumo com os três campos",
			setup: func(service *mocks.MockService) {
				service.EXPECT().
					GeneralMetrics(gomock.Any()).
					Return(&domain.GeneralMetrics{
						TotalRevenue: 125000,
						TotalSales:   842,
						AvgTicket:    148.45,
					}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"totalRevenue":125000,"totalSales":842,"avgTicket":148.45}`,
		},
		{
			name: "Sem vendas na janela - deve responder zeros em todos os campos",
			setup: func(service *mocks.MockService) {
				service.EXPECT().
					GeneralMetrics(gomock.Any()).
					Return(&domain.GeneralMetrics{}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"totalRevenue":0,"totalSales":0,"avgTicket":0}`,
		},
		{
			name: "Banco indisponível - deve responder 503 com o código de comunicação",
			setup: func(service *mocks.MockService) {
				service.EXPECT().
					GeneralMetrics(gomock.Any()).
					Return(nil, errors.Wrap(domain.ErrStoreUnavailable, "erro ao adquirir conexão"))
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"code":"SRV_004","message":"Serviço de Banco de Dados Indisponível"}`,
		},
		{
			name: "Falha na consulta - deve responder 500 com o código de banco",
			setup: func(service *mocks.MockService) {
				service.EXPECT().
					GeneralMetrics(gomock.Any()).
					Return(nil, errors.New("pq: relation \"sales\" does not exist"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"code":"SRV_002","message":"Erro ao buscar métricas gerais"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockService(ctrl)
			tt.setup(service)

			req := httptest.NewRequest(http.MethodGet, "/api/metrics/general", nil)
			rec := httptest.NewRecorder()

			GetGeneralMetrics(service).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestGetRevenueByPeriod(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		setup      func(service *mocks.MockService)
		wantStatus int
		wantBody   string
	}{
		{
			name:  "Parâmetro ausente - deve consultar com o período padrão de 7 dias",
			query: "",
			setup: func(service *mocks.MockService) {
				service.EXPECT().
					RevenueByPeriod(gomock.Any(), domain.PeriodLast7Days).
					Return([]domain.WeekdayRevenue{
						{Name: "Seg", Revenue: 1200},
						{Name: "Ter", Revenue: 1850},
					}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[{"name":"Seg","Faturamento (R$)":1200},{"name":"Ter","Faturamento (R$)":1850}]`,
		},
		{
			name:  "Período month - deve repassar o seletor escolhido ao serviço",
			query: "?period=month",
			setup: func(service *mocks.MockService) {
				service.EXPECT().
					RevenueByPeriod(gomock.Any(), domain.PeriodMonth).
					Return([]domain.WeekdayRevenue{
						{Name: "Sáb", Revenue: 9300},
					}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[{"name":"Sáb","Faturamento (R$)":9300}]`,
		},
		{
			name:  "Período inválido - deve responder 400 sem consultar o serviço",
			query: "?period=90d",
			setup: func(service *mocks.MockService) {
				// Nenhuma chamada esperada
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"code":"VAL_001","message":"Período inválido."}`,
		},
		{
			name:  "Sem vendas na janela - deve responder lista vazia",
			query: "?period=30d",
			setup: func(service *mocks.MockService) {
				service.EXPECT().
					RevenueByPeriod(gomock.Any(), domain.PeriodLast30Days).
					Return([]domain.WeekdayRevenue{}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:  "Banco indisponível - deve responder 503 com o código de comunicação",
			query: "?period=6m",
			setup: func(service *mocks.MockService) {
				service.EXPECT().
					RevenueByPeriod(gomock.Any(), domain.PeriodLast6Months).
					Return(nil, errors.Wrap(domain.ErrStoreUnavailable, "erro ao adquirir conexão"))
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"code":"SRV_004","message":"Serviço de Banco de Dados Indisponível"}`,
		},
		{
			name:  "Falha na consulta - deve responder 500 com o código de banco",
			query: "?period=7d",
			setup: func(service *mocks.MockService) {
				service.EXPECT().
					RevenueByPeriod(gomock.Any(), domain.PeriodLast7Days).
					Return(nil, errors.New("context canceled"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"code":"SRV_002","message":"Erro ao buscar faturamento por período"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockService(ctrl)
			tt.setup(service)

			req := httptest.NewRequest(http.MethodGet, "/api/metrics/revenue_period"+tt.query, nil)
			rec := httptest.NewRecorder()

			GetRevenueByPeriod(service).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
