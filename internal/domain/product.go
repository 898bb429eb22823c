package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto do catálogo. O SKU é único e imutável;
// o preço atual pode mudar sem afetar pedidos já realizados.
type Product struct {
	ID        int             `json:"id"`
	SKU       string          `json:"sku"`
	Title     string          `json:"title"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	CreatedAt time.Time       `json:"created_at"`
}
