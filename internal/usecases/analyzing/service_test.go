package analyzing_test

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/revalyt/analytics-api/infrastructure/repository/mocks"
	"github.com/revalyt/analytics-api/internal/config"
	"github.com/revalyt/analytics-api/internal/domain"
	"github.com/revalyt/analytics-api/internal/usecases/analyzing"
	"go.uber.org/mock/gomock"
)

func TestComputeKPIs(t *testing.T) {
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	tests := []struct {
		name            string
		aggregate       *domain.KPIAggregate
		expectedRevenue string
		expectedOrders  int64
		expectedAOV     string
	}{
		{
			name: "dois pedidos pagos - ticket médio exato",
			aggregate: &domain.KPIAggregate{
				Revenue: decimal.RequireFromString("500.00"),
				Orders:  2,
			},
			expectedRevenue: "500",
			expectedOrders:  2,
			expectedAOV:     "250",
		},
		{
			name: "intervalo sem pedidos - zeros, sem divisão por zero",
			aggregate: &domain.KPIAggregate{
				Revenue: decimal.Zero,
				Orders:  0,
			},
			expectedRevenue: "0",
			expectedOrders:  0,
			expectedAOV:     "0",
		},
		{
			name: "divisão com dízima - arredonda para 2 casas",
			aggregate: &domain.KPIAggregate{
				Revenue: decimal.RequireFromString("100.00"),
				Orders:  3,
			},
			expectedRevenue: "100",
			expectedOrders:  3,
			expectedAOV:     "33.33",
		},
		{
			name: "meio centavo - arredonda para cima",
			aggregate: &domain.KPIAggregate{
				Revenue: decimal.RequireFromString("0.25"),
				Orders:  2,
			},
			expectedRevenue: "0.25",
			expectedOrders:  2,
			expectedAOV:     "0.13",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockOrderRepo := mocks.NewMockOrderRepository(ctrl)
			mockOrderRepo.EXPECT().
				AggregateKPIs(start, end).
				Return(tt.aggregate, nil)

			service := analyzing.NewService(mockOrderRepo, &config.Config{})

			result, err := service.ComputeKPIs(start, end)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedRevenue, result.Revenue.String())
			assert.Equal(t, tt.expectedOrders, result.Orders)
			assert.Equal(t, tt.expectedAOV, result.AOV.String())
		})
	}
}

func TestComputeKPIs_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	mockOrderRepo := mocks.NewMockOrderRepository(ctrl)
	mockOrderRepo.EXPECT().
		AggregateKPIs(start, end).
		Return(nil, errors.New("connection refused"))

	service := analyzing.NewService(mockOrderRepo, &config.Config{})

	result, err := service.ComputeKPIs(start, end)
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestListPaidOrders_UsesConfiguredPageSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expected := []*domain.OrderSummary{
		{ID: 1, Reference: "AB12CD34EF", Customer: "Maria", Status: domain.OrderStatusPaid},
	}

	mockOrderRepo := mocks.NewMockOrderRepository(ctrl)
	mockOrderRepo.EXPECT().
		ListPaidOrders(2, 50).
		Return(expected, nil)

	cfg := &config.Config{API: config.API{PageSize: 50}}
	service := analyzing.NewService(mockOrderRepo, cfg)

	orders, err := service.ListPaidOrders(2)
	require.NoError(t, err)
	assert.Equal(t, expected, orders)
}
