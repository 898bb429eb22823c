package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/revalyt/analytics-api/internal/config"
	"github.com/revalyt/analytics-api/internal/usecases/reporting"
)

// DailyKPISyncConfig representa a configuração do agendador do rollup diário de KPIs
type DailyKPISyncConfig struct {
	CronSchedule string
	Timezone     string
	SyncEnabled  bool
}

// DailyKPISyncService gerencia o agendamento e execução do rollup diário de KPIs
type DailyKPISyncService struct {
	scheduler           *gocron.Scheduler
	config              DailyKPISyncConfig
	appConfig           *config.Config
	reporter            reporting.Reporter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewDailyKPISyncService cria uma nova instância do serviço de rollup diário de KPIs
func NewDailyKPISyncService(
	reporter reporting.Reporter,
	appConfig *config.Config,
) (*DailyKPISyncService, error) {
	syncConfig := DailyKPISyncConfig{
		CronSchedule: appConfig.DailyKPISync.CronSchedule,
		Timezone:     appConfig.DailyKPISync.Timezone,
		SyncEnabled:  appConfig.DailyKPISync.Enabled,
	}

	location, err := time.LoadLocation(syncConfig.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone inválida para o agendador do rollup diário: %w", err)
	}

	scheduler := gocron.NewScheduler(location)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"timezone":      syncConfig.Timezone,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador do rollup diário de KPIs carregada")

	return &DailyKPISyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		appConfig:   appConfig,
		reporter:    reporter,
		syncRunning: false,
	}, nil
}

// Start inicia o agendador
func (s *DailyKPISyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Rollup diário de KPIs desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do rollup diário de KPIs")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runDailyRollup("")
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar rollup diário de KPIs: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do rollup diário de KPIs")
		s.scheduler.Stop()
	}()

	return nil
}

// runDailyRollup executa uma rodada do rollup, com guarda contra execuções sobrepostas
func (s *DailyKPISyncService) runDailyRollup(targetDate string) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Rollup diário de KPIs já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.syncMutex.Lock()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando rollup diário de KPIs")

	report, err := s.reporter.GenerateDailyReport(targetDate)
	if err != nil {
		logrus.WithError(err).Error("Erro ao executar rollup diário de KPIs")
		return
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"date":     report.Date.Format(time.DateOnly),
		"orders":   report.Orders,
	}).Info("Rollup diário de KPIs concluído")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// TriggerManualSync inicia manualmente um rollup diário de KPIs
func (s *DailyKPISyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Rollup diário de KPIs já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando rollup manual de KPIs")
	go s.runDailyRollup("")
}

// GetStatus retorna o status atual do agendador. Os timestamps são lidos
// sob o mutex porque o endpoint de status roda concorrente ao rollup
func (s *DailyKPISyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	startedAt := s.lastSyncStartedAt
	completedAt := s.lastSyncCompletedAt
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_timezone":          s.config.Timezone,
		"last_sync_started_at":   startedAt,
		"last_sync_completed_at": completedAt,
	}
}
