package reporting

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/revalyt/analytics-api/infrastructure/repository"
	"github.com/revalyt/analytics-api/internal/config"
	"github.com/revalyt/analytics-api/internal/domain"
	"github.com/revalyt/analytics-api/internal/usecases/analyzing"
	"github.com/revalyt/analytics-api/pkg/retry"
	"github.com/revalyt/analytics-api/pkg/utils"
)

// Reporter é o núcleo do job de rollup diário: resolve o dia alvo, agrega
// os KPIs do intervalo e persiste o snapshot via upsert idempotente
type Reporter interface {
	GenerateDailyReport(targetDate string) (*domain.DailyKPI, error)
}

type Service struct {
	analyzer     analyzing.Analyzer
	dailyKPIRepo repository.DailyKPIRepository
	policy       retry.Policy
	location     *time.Location
	now          func() time.Time
}

func NewService(
	analyzer analyzing.Analyzer,
	dailyKPIRepo repository.DailyKPIRepository,
	cfg *config.Config,
) (Reporter, error) {
	location, err := time.LoadLocation(cfg.DailyKPISync.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone inválida para o rollup diário: %w", err)
	}

	policy := retry.Policy{
		MaxRetries:   uint64(cfg.DailyKPISync.MaxRetries),
		BaseDelay:    time.Duration(cfg.DailyKPISync.RetryBaseSeconds) * time.Second,
		MaxDelay:     time.Duration(cfg.DailyKPISync.RetryMaxSeconds) * time.Second,
		JitterFactor: cfg.DailyKPISync.RetryJitter,
	}

	return &Service{
		analyzer:     analyzer,
		dailyKPIRepo: dailyKPIRepo,
		policy:       policy,
		location:     location,
		now:          time.Now,
	}, nil
}

// GenerateDailyReport computa e grava o snapshot de KPIs de um dia.
//
// target_date vazio usa "ontem" em UTC. Entrada malformada falha
// imediatamente com ValidationError, antes de qualquer retry; erros de
// agregação ou persistência são repetidos sob a política configurada.
// Reexecutar para o mesmo dia recomputa e sobrescreve o snapshot.
func (s *Service) GenerateDailyReport(targetDate string) (*domain.DailyKPI, error) {
	day, err := s.resolveTargetDay(targetDate)
	if err != nil {
		return nil, err
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, s.location)
	end := start.Add(24 * time.Hour)

	logrus.WithFields(logrus.Fields{
		"date":  start.Format(time.DateOnly),
		"start": start.Format(time.RFC3339),
		"end":   end.Format(time.RFC3339),
	}).Info("Gerando snapshot diário de KPIs")

	var report *domain.DailyKPI
	operation := func() error {
		result, err := s.analyzer.ComputeKPIs(start, end)
		if err != nil {
			return fmt.Errorf("erro ao computar KPIs do dia: %w", err)
		}

		kpi := &domain.DailyKPI{
			Date:    start,
			Revenue: result.Revenue,
			Orders:  result.Orders,
			AOV:     result.AOV,
		}

		if err := s.dailyKPIRepo.SaveOrUpdate(kpi); err != nil {
			return fmt.Errorf("erro ao persistir snapshot diário: %w", err)
		}

		report = kpi
		return nil
	}

	if err := s.policy.Do(operation); err != nil {
		logrus.WithError(err).WithField("date", start.Format(time.DateOnly)).
			Error("Rollup diário esgotou as tentativas de retry")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"date":    report.Date.Format(time.DateOnly),
		"revenue": report.Revenue.String(),
		"orders":  report.Orders,
		"aov":     report.AOV.String(),
	}).Info("Snapshot diário de KPIs gravado com sucesso")

	return report, nil
}

// resolveTargetDay valida o dia alvo antes de qualquer retry ser agendado
func (s *Service) resolveTargetDay(targetDate string) (time.Time, error) {
	day, err := utils.ParseDate(targetDate)
	if err != nil {
		return time.Time{}, NewValidationError("target_date must be ISO formatted YYYY-MM-DD")
	}

	if day.IsZero() {
		yesterday := s.now().UTC().Add(-24 * time.Hour)
		return time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	return *day, nil
}
