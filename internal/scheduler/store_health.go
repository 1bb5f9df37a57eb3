package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/nolafood/restaurant-analytics-api/internal/config"
	"github.com/sirupsen/logrus"
)

// Pinger verifica a disponibilidade do banco de vendas
type Pinger interface {
	Ping(context.Context) error
}

// StoreHealthConfig representa a configuração da sonda de disponibilidade do banco
type StoreHealthConfig struct {
	CronSchedule string
	Enabled      bool
}

// StoreHealthService agenda verificações periódicas de disponibilidade do banco
// e registra as transições de estado nos logs. A sonda não toca nos dados de
// vendas; ela apenas executa um ping com timeout
type StoreHealthService struct {
	scheduler   *gocron.Scheduler
	config      StoreHealthConfig
	conn        Pinger
	mu          sync.Mutex
	unreachable bool
}

// NewStoreHealthService cria uma nova instância da sonda de disponibilidade
func NewStoreHealthService(conn Pinger, appConfig *config.Config) *StoreHealthService {
	probeConfig := StoreHealthConfig{
		CronSchedule: appConfig.HealthProbe.CronSchedule,
		Enabled:      appConfig.HealthProbe.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": probeConfig.CronSchedule,
		"enabled":       probeConfig.Enabled,
	}).Info("Configuração da sonda de disponibilidade do banco carregada")

	return &StoreHealthService{
		scheduler: scheduler,
		config:    probeConfig,
		conn:      conn,
	}
}

// Start inicia o agendador da sonda
func (s *StoreHealthService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Sonda de disponibilidade do banco desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando sonda de disponibilidade do banco")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.probe(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sonda de disponibilidade: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando sonda de disponibilidade do banco")
		s.scheduler.Stop()
	}()

	return nil
}

// Unreachable informa se a última verificação encontrou o banco fora do ar
func (s *StoreHealthService) Unreachable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unreachable
}

// probe executa uma verificação e loga apenas as transições de estado
func (s *StoreHealthService) probe(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := s.conn.Ping(pingCtx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		if !s.unreachable {
			logrus.WithError(err).Warn("Banco de dados de vendas indisponível")
		}
		s.unreachable = true
		return
	}

	if s.unreachable {
		logrus.Info("Banco de dados de vendas disponível novamente")
	}
	s.unreachable = false
}
