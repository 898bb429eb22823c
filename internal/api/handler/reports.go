package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/revalyt/analytics-api/infrastructure/repository"
	"github.com/revalyt/analytics-api/internal/domain"
	"github.com/revalyt/analytics-api/internal/scheduler"
	"github.com/revalyt/analytics-api/internal/usecases/analyzing"
	"github.com/revalyt/analytics-api/internal/usecases/reporting"
	"github.com/revalyt/analytics-api/pkg/apiErrors"
)

type RunDailyReportRequest struct {
	TargetDate string `json:"target_date"`
}

type DailyKPIResponse struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Orders  int64   `json:"orders"`
	AOV     float64 `json:"aov"`
}

// RunDailyReport dispara o rollup de forma síncrona, útil para backfill.
// target_date vazio usa ontem (UTC); reexecução sobrescreve o snapshot do dia.
func RunDailyReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RunDailyReportRequest

		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&req)
		}

		report, err := service.GenerateDailyReport(req.TargetDate)
		if err != nil {
			if reporting.IsValidationError(err) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar snapshot diário", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(toDailyKPIResponse(report))
	}
}

// ListDailyReports retorna os snapshots gravados no intervalo solicitado,
// para que dashboards não precisem reagregar o razão de pedidos
func ListDailyReports(dailyKPIRepo repository.DailyKPIRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		startStr := r.URL.Query().Get("start")
		endStr := r.URL.Query().Get("end")

		start, end := analyzing.ParseRange(startStr, endStr, time.Now())

		reports, err := dailyKPIRepo.GetByDateRange(start, end)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar snapshots diários", nil)
			return
		}

		results := make([]DailyKPIResponse, 0, len(reports))
		for _, report := range reports {
			results = append(results, toDailyKPIResponse(report))
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"results": results,
		})
	}
}

// GetReportStatus retorna o status atual do agendador do rollup diário
func GetReportStatus(syncService *scheduler.DailyKPISyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(syncService.GetStatus())
	}
}

func toDailyKPIResponse(report *domain.DailyKPI) DailyKPIResponse {
	return DailyKPIResponse{
		Date:    report.Date.Format(time.DateOnly),
		Revenue: report.Revenue.InexactFloat64(),
		Orders:  report.Orders,
		AOV:     report.AOV.InexactFloat64(),
	}
}
