package reporting

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/revalyt/analytics-api/infrastructure/repository/mocks"
	"github.com/revalyt/analytics-api/internal/domain"
	analyzingmocks "github.com/revalyt/analytics-api/internal/usecases/analyzing/mocks"
	"github.com/revalyt/analytics-api/pkg/retry"
	"go.uber.org/mock/gomock"
)

func newTestService(analyzer *analyzingmocks.MockAnalyzer, repo *repomocks.MockDailyKPIRepository, now time.Time) *Service {
	return &Service{
		analyzer:     analyzer,
		dailyKPIRepo: repo,
		policy: retry.Policy{
			MaxRetries:   2,
			BaseDelay:    time.Millisecond,
			MaxDelay:     5 * time.Millisecond,
			JitterFactor: 0,
		},
		location: time.UTC,
		now:      func() time.Time { return now },
	}
}

func TestGenerateDailyReport_DefaultsToYesterday(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	expectedStart := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
	expectedEnd := expectedStart.Add(24 * time.Hour)

	mockAnalyzer := analyzingmocks.NewMockAnalyzer(ctrl)
	mockRepo := repomocks.NewMockDailyKPIRepository(ctrl)

	mockAnalyzer.EXPECT().
		ComputeKPIs(expectedStart, expectedEnd).
		Return(&domain.KPIResult{
			Revenue: decimal.RequireFromString("930.50"),
			Orders:  4,
			AOV:     decimal.RequireFromString("232.63"),
		}, nil)

	mockRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(kpi *domain.DailyKPI) error {
			assert.True(t, expectedStart.Equal(kpi.Date))
			assert.Equal(t, "930.5", kpi.Revenue.String())
			assert.Equal(t, int64(4), kpi.Orders)
			assert.Equal(t, "232.63", kpi.AOV.String())
			return nil
		})

	service := newTestService(mockAnalyzer, mockRepo, now)

	report, err := service.GenerateDailyReport("")
	require.NoError(t, err)
	assert.True(t, expectedStart.Equal(report.Date))
	assert.Equal(t, int64(4), report.Orders)
}

func TestGenerateDailyReport_ExplicitTargetDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expectedStart := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	expectedEnd := expectedStart.Add(24 * time.Hour)

	mockAnalyzer := analyzingmocks.NewMockAnalyzer(ctrl)
	mockRepo := repomocks.NewMockDailyKPIRepository(ctrl)

	mockAnalyzer.EXPECT().
		ComputeKPIs(expectedStart, expectedEnd).
		Return(&domain.KPIResult{
			Revenue: decimal.Zero,
			Orders:  0,
			AOV:     decimal.Zero,
		}, nil)

	mockRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

	service := newTestService(mockAnalyzer, mockRepo, time.Now())

	report, err := service.GenerateDailyReport("2024-02-29")
	require.NoError(t, err)
	assert.True(t, expectedStart.Equal(report.Date))
	assert.Equal(t, int64(0), report.Orders)
}

func TestGenerateDailyReport_MalformedTargetDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada ao analyzer ou ao repositório deve acontecer
	mockAnalyzer := analyzingmocks.NewMockAnalyzer(ctrl)
	mockRepo := repomocks.NewMockDailyKPIRepository(ctrl)

	service := newTestService(mockAnalyzer, mockRepo, time.Now())

	for _, input := range []string{"15/06/2024", "2024-13-01", "yesterday", "2024-06-15T00:00:00Z"} {
		report, err := service.GenerateDailyReport(input)
		assert.Nil(t, report)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
		assert.EqualError(t, err, "target_date must be ISO formatted YYYY-MM-DD")
	}
}

func TestGenerateDailyReport_RetriesTransientFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expectedStart := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
	expectedEnd := expectedStart.Add(24 * time.Hour)

	mockAnalyzer := analyzingmocks.NewMockAnalyzer(ctrl)
	mockRepo := repomocks.NewMockDailyKPIRepository(ctrl)

	gomock.InOrder(
		mockAnalyzer.EXPECT().
			ComputeKPIs(expectedStart, expectedEnd).
			Return(nil, errors.New("deadlock detected")),
		mockAnalyzer.EXPECT().
			ComputeKPIs(expectedStart, expectedEnd).
			Return(&domain.KPIResult{
				Revenue: decimal.RequireFromString("10.00"),
				Orders:  1,
				AOV:     decimal.RequireFromString("10.00"),
			}, nil),
	)

	mockRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

	service := newTestService(mockAnalyzer, mockRepo, time.Date(2024, 6, 15, 3, 0, 0, 0, time.UTC))

	report, err := service.GenerateDailyReport("")
	require.NoError(t, err)
	assert.Equal(t, int64(1), report.Orders)
}

func TestGenerateDailyReport_ExhaustsRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := analyzingmocks.NewMockAnalyzer(ctrl)
	mockRepo := repomocks.NewMockDailyKPIRepository(ctrl)

	// 1 execução + 2 retries da política de teste
	mockAnalyzer.EXPECT().
		ComputeKPIs(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused")).
		Times(3)

	service := newTestService(mockAnalyzer, mockRepo, time.Date(2024, 6, 15, 3, 0, 0, 0, time.UTC))

	report, err := service.GenerateDailyReport("")
	assert.Nil(t, report)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestGenerateDailyReport_PersistFailureIsRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := analyzingmocks.NewMockAnalyzer(ctrl)
	mockRepo := repomocks.NewMockDailyKPIRepository(ctrl)

	result := &domain.KPIResult{
		Revenue: decimal.RequireFromString("42.00"),
		Orders:  2,
		AOV:     decimal.RequireFromString("21.00"),
	}

	mockAnalyzer.EXPECT().
		ComputeKPIs(gomock.Any(), gomock.Any()).
		Return(result, nil).
		Times(2)

	gomock.InOrder(
		mockRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(errors.New("serialization failure")),
		mockRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil),
	)

	service := newTestService(mockAnalyzer, mockRepo, time.Date(2024, 6, 15, 3, 0, 0, 0, time.UTC))

	report, err := service.GenerateDailyReport("")
	require.NoError(t, err)
	assert.Equal(t, "42", report.Revenue.String())
}
