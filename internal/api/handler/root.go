package handler

import (
	"net/http"

	"github.com/nolafood/restaurant-analytics-api/pkg/log"
)

const welcomeMessage = "API de Análise de Restaurante Rodando!"

// RootHandler confirma que a API está de pé
func RootHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		err := json.NewEncoder(w).Encode(map[string]string{"message": welcomeMessage})
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao enviar resposta da raiz")
		}
	})
}
