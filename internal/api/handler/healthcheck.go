package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/revalyt/analytics-api/infrastructure/database/postgres"
)

// HealthcheckHandler responde a sondas de liveness e verifica a conexão
// com o banco de dados
func HealthcheckHandler(conn postgres.Conn) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := "ok"
		database := "ok"
		code := http.StatusOK

		if err := conn.Ping(r.Context()); err != nil {
			logrus.WithError(err).Warn("healthcheck: banco de dados indisponível")
			status = "degraded"
			database = "unavailable"
			code = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		err := json.NewEncoder(w).Encode(map[string]string{
			"status":   status,
			"database": database,
			"time":     time.Now().UTC().Format(time.RFC3339),
		})
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
