package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/revalyt/analytics-api/infrastructure/database/postgres"
	"github.com/revalyt/analytics-api/infrastructure/repository"
	"github.com/revalyt/analytics-api/internal/api"
	"github.com/revalyt/analytics-api/internal/config"
	"github.com/revalyt/analytics-api/internal/scheduler"
	"github.com/revalyt/analytics-api/internal/usecases/analyzing"
	"github.com/revalyt/analytics-api/internal/usecases/authenticating"
	"github.com/revalyt/analytics-api/internal/usecases/ordering"
	"github.com/revalyt/analytics-api/internal/usecases/reporting"
	"github.com/revalyt/analytics-api/pkg/cookiedomain"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	orderRepo := repository.NewOrderRepository(pgConn)
	dailyKPIRepo := repository.NewDailyKPIRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	customerRepo := repository.NewCustomerRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)

	analyzer := analyzing.NewService(orderRepo, cfg)
	orderer := ordering.NewService(orderRepo, customerRepo, productRepo)
	authenticator := authenticating.NewService(userRepo, cfg)

	reporter, err := reporting.NewService(analyzer, dailyKPIRepo, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o serviço de rollup diário")
	}

	cookieResolver := cookiedomain.NewResolver(
		cfg.Auth.CookieDomain,
		cfg.Server.Host,
		cfg.Auth.CookieAllowedHosts,
		nil,
	)

	// Inicializa o agendador do rollup diário de KPIs
	dailyKPISyncService, err := scheduler.NewDailyKPISyncService(reporter, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o agendador do rollup diário")
	}

	if err := dailyKPISyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do rollup diário de KPIs")
	} else {
		logrus.Info("Agendador do rollup diário de KPIs iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		pgConn,
		analyzer,
		orderer,
		reporter,
		authenticator,
		dailyKPIRepo,
		dailyKPISyncService,
		cookieResolver,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
