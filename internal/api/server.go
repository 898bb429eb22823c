package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/revalyt/analytics-api/infrastructure/database/postgres"
	"github.com/revalyt/analytics-api/infrastructure/repository"
	"github.com/revalyt/analytics-api/internal/api/handler"
	"github.com/revalyt/analytics-api/internal/api/handler/router"
	"github.com/revalyt/analytics-api/internal/config"
	"github.com/revalyt/analytics-api/internal/scheduler"
	"github.com/revalyt/analytics-api/internal/usecases/analyzing"
	"github.com/revalyt/analytics-api/internal/usecases/authenticating"
	"github.com/revalyt/analytics-api/internal/usecases/ordering"
	"github.com/revalyt/analytics-api/internal/usecases/reporting"
	"github.com/revalyt/analytics-api/pkg/cookiedomain"
	"github.com/revalyt/analytics-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	conn postgres.Conn,
	analyzer analyzing.Analyzer,
	orderer ordering.Orderer,
	reporter reporting.Reporter,
	authenticator authenticating.Authenticator,
	dailyKPIRepo repository.DailyKPIRepository,
	dailyKPISyncService *scheduler.DailyKPISyncService,
	cookieResolver *cookiedomain.Resolver,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(conn)...),
		router.WithRoutes(handler.Authentication(authenticator, config, cookieResolver)...),
		router.WithRoutes(handler.Analytics(analyzer, orderer)...),
		router.WithRoutes(handler.Reports(reporter, dailyKPIRepo, dailyKPISyncService)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator, config),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
