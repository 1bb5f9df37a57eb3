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

func TestGetTopProducts(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(service *mocks.MockService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "Ranking com produtos - deve responder na ordem e com os campos do dashboard",
			setup: func(service *mocks.MockService) {
				service.EXPECT().
					TopProducts(gomock.Any()).
					Return([]domain.TopProduct{
						{Name: "Pizza Calabresa", Quantity: 12, Revenue: 597},
						{Name: "Feijoada Completa", Quantity: 9, Revenue: 449},
					}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[{"name":"Pizza Calabresa","Vendas":12,"Faturamento":597},{"name":"Feijoada Completa","Vendas":9,"Faturamento":449}]`,
		},
		{
			name: "Sem vendas concluídas - deve responder lista vazia",
			setup: func(service *mocks.MockService) {
				service.EXPECT().
					TopProducts(gomock.Any()).
					Return([]domain.TopProduct{}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name: "Banco indisponível - deve responder 503 com o código de comunicação",
			setup: func(service *mocks.MockService) {
				service.EXPECT().
					TopProducts(gomock.Any()).
					Return(nil, errors.Wrap(domain.ErrStoreUnavailable, "erro ao adquirir conexão"))
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"code":"SRV_004","message":"Serviço de Banco de Dados Indisponível"}`,
		},
		{
			name: "Falha na consulta - deve responder 500 com o código de banco",
			setup: func(service *mocks.MockService) {
				service.EXPECT().
					TopProducts(gomock.Any()).
					Return(nil, errors.New("driver: bad connection"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"code":"SRV_002","message":"Erro ao buscar ranking de produtos"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockService(ctrl)
			tt.setup(service)

			req := httptest.NewRequest(http.MethodGet, "/api/products/top", nil)
			rec := httptest.NewRecorder()

			GetTopProducts(service).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
