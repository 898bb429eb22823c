package analyzing

import (
	"time"

	"github.com/revalyt/analytics-api/pkg/utils"
)

const defaultRangeDays = 30

// ParseRange interpreta os parâmetros start/end do endpoint de KPIs.
// Cada limite é analisado de forma independente; valor ausente ou
// malformado cai no default: últimos 30 dias até agora, em UTC.
func ParseRange(startStr, endStr string, now time.Time) (time.Time, time.Time) {
	now = now.UTC()

	start := now.AddDate(0, 0, -defaultRangeDays)
	if startStr != "" {
		if parsed, err := utils.ParseDateTime(startStr); err == nil {
			start = parsed
		}
	}

	end := now
	if endStr != "" {
		if parsed, err := utils.ParseDateTime(endStr); err == nil {
			end = parsed
		}
	}

	return start, end
}
