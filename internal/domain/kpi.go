package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// KPIAggregate é o resultado bruto da agregação sobre o razão de pedidos
type KPIAggregate struct {
	Revenue decimal.Decimal
	Orders  int64
}

// KPIResult contém os indicadores calculados para um intervalo [start, end)
type KPIResult struct {
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int64           `json:"orders"`
	AOV     decimal.Decimal `json:"aov"`
}

// DailyKPI é o snapshot diário persistido pelo job de rollup.
// Existe no máximo uma linha por data (constraint única em date).
type DailyKPI struct {
	ID        int             `json:"id"`
	Date      time.Time       `json:"date"`
	Revenue   decimal.Decimal `json:"revenue"`
	Orders    int64           `json:"orders"`
	AOV       decimal.Decimal `json:"aov"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
