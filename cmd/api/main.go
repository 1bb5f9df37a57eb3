package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/nolafood/restaurant-analytics-api/infrastructure/database/postgres"
	"github.com/nolafood/restaurant-analytics-api/infrastructure/repository"
	"github.com/nolafood/restaurant-analytics-api/internal/api"
	"github.com/nolafood/restaurant-analytics-api/internal/config"
	"github.com/nolafood/restaurant-analytics-api/internal/scheduler"
	"github.com/nolafood/restaurant-analytics-api/internal/usecases/reporting"
	"github.com/sirupsen/logrus"
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

	analyticsRepo := repository.NewAnalyticsRepository(pgConn)

	reportingService := reporting.NewService(analyticsRepo)

	// Inicializa a sonda de disponibilidade do banco em background
	storeHealthService := scheduler.NewStoreHealthService(pgConn, cfg)
	if err := storeHealthService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar a sonda de disponibilidade do banco")
	} else {
		logrus.Info("Sonda de disponibilidade do banco iniciada com sucesso")
	}

	server, err := api.New(cfg, pgConn, reportingService)
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

// pgconn prepara o acesso ao banco de dados. A API sobe mesmo com o banco
// fora do ar; as requisições respondem 503 até ele voltar
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar a conexão com o PostgreSQL")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := conn.Ping(pingCtx); err != nil {
		logrus.WithError(err).Warn("PostgreSQL indisponível no momento da inicialização")
	} else {
		logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	}

	return conn
}
