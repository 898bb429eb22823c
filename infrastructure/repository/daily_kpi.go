package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/revalyt/analytics-api/infrastructure/database/postgres"
	"github.com/revalyt/analytics-api/internal/domain"
)

const (
	dailyKPIsTable = "daily_kpis dk"
)

type DailyKPIRepository interface {
	SaveOrUpdate(kpi *domain.DailyKPI) error
	GetByDate(date time.Time) (*domain.DailyKPI, error)
	GetByDateRange(startDate, endDate time.Time) ([]*domain.DailyKPI, error)
}

type dailyKPIRepository struct {
	conn *postgres.Connection
}

func NewDailyKPIRepository(conn *postgres.Connection) DailyKPIRepository {
	return &dailyKPIRepository{
		conn: conn,
	}
}

// SaveOrUpdate grava o snapshot do dia em um único upsert atômico.
// A constraint única em date garante no máximo uma linha por dia mesmo
// com execuções concorrentes (last-writer-wins).
func (r *dailyKPIRepository) SaveOrUpdate(kpi *domain.DailyKPI) error {
	query := squirrel.StatementBuilder.
		Insert("daily_kpis").
		Columns("date", "revenue", "orders", "aov").
		Values(
			kpi.Date.Format(time.DateOnly),
			kpi.Revenue,
			kpi.Orders,
			kpi.AOV,
		).
		Suffix(`
			ON CONFLICT (date) DO UPDATE SET
				revenue = EXCLUDED.revenue,
				orders = EXCLUDED.orders,
				aov = EXCLUDED.aov,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *dailyKPIRepository) GetByDate(date time.Time) (*domain.DailyKPI, error) {
	query, args, err := squirrel.
		Select("dk.id", "dk.date", "dk.revenue", "dk.orders", "dk.aov", "dk.created_at", "dk.updated_at").
		From(dailyKPIsTable).
		Where(squirrel.Eq{"dk.date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	kpi, err := r.scanDailyKPI(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return kpi, nil
}

func (r *dailyKPIRepository) GetByDateRange(startDate, endDate time.Time) ([]*domain.DailyKPI, error) {
	query, args, err := squirrel.
		Select("dk.id", "dk.date", "dk.revenue", "dk.orders", "dk.aov", "dk.created_at", "dk.updated_at").
		From(dailyKPIsTable).
		Where(squirrel.GtOrEq{"dk.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"dk.date": endDate.Format(time.DateOnly)}).
		OrderBy("dk.date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	kpis := make([]*domain.DailyKPI, 0)
	for rows.Next() {
		kpi := &domain.DailyKPI{}
		if err := rows.Scan(
			&kpi.ID,
			&kpi.Date,
			&kpi.Revenue,
			&kpi.Orders,
			&kpi.AOV,
			&kpi.CreatedAt,
			&kpi.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshots: %w", err)
		}
		kpis = append(kpis, kpi)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return kpis, nil
}

func (r *dailyKPIRepository) scanDailyKPI(row *sql.Row) (*domain.DailyKPI, error) {
	kpi := &domain.DailyKPI{}

	err := row.Scan(
		&kpi.ID,
		&kpi.Date,
		&kpi.Revenue,
		&kpi.Orders,
		&kpi.AOV,
		&kpi.CreatedAt,
		&kpi.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return kpi, nil
}
