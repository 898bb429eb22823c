package analyzing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/revalyt/analytics-api/infrastructure/repository"
	"github.com/revalyt/analytics-api/internal/config"
	"github.com/revalyt/analytics-api/internal/domain"
)

// Analyzer expõe o caminho de leitura do painel: agregação de KPIs sobre o
// razão de pedidos e listagem paginada de pedidos pagos
type Analyzer interface {
	ComputeKPIs(start, end time.Time) (*domain.KPIResult, error)
	ListPaidOrders(page int) ([]*domain.OrderSummary, error)
}

type Service struct {
	orderRepo repository.OrderRepository
	cfg       *config.Config
}

func NewService(orderRepo repository.OrderRepository, cfg *config.Config) Analyzer {
	return &Service{
		orderRepo: orderRepo,
		cfg:       cfg,
	}
}

// ComputeKPIs calcula receita, quantidade de pedidos e ticket médio dos
// pedidos pagos no intervalo meio-aberto [start, end).
//
// Toda a aritmética monetária usa decimal de ponto fixo; o AOV é
// arredondado para 2 casas com round-half-up. Conjunto vazio produz
// {0.00, 0, 0.00} — nunca erro de divisão.
func (s *Service) ComputeKPIs(start, end time.Time) (*domain.KPIResult, error) {
	aggregate, err := s.orderRepo.AggregateKPIs(start, end)
	if err != nil {
		return nil, fmt.Errorf("erro ao agregar pedidos pagos: %w", err)
	}

	aov := decimal.Zero
	if aggregate.Orders > 0 {
		aov = aggregate.Revenue.Div(decimal.NewFromInt(aggregate.Orders)).Round(2)
	}

	return &domain.KPIResult{
		Revenue: aggregate.Revenue,
		Orders:  aggregate.Orders,
		AOV:     aov,
	}, nil
}

// ListPaidOrders lista pedidos pagos, mais recentes primeiro, com o
// tamanho de página configurado
func (s *Service) ListPaidOrders(page int) ([]*domain.OrderSummary, error) {
	return s.orderRepo.ListPaidOrders(page, s.cfg.API.PageSize)
}
