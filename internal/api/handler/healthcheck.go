package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/nolafood/restaurant-analytics-api/infrastructure/database/postgres"
	"github.com/sirupsen/logrus"
)

// HealthcheckHandler reporta o horário do servidor e a disponibilidade do banco
func HealthcheckHandler(conn postgres.Conn) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		database := "reachable"
		if err := conn.Ping(ctx); err != nil {
			database = "unreachable"
		}

		w.Header().Set("Content-Type", "application/json")

		err := json.NewEncoder(w).Encode(map[string]string{
			"status":   "ok",
			"database": database,
			"time":     time.Now().String(),
		})
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
