package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus indica a situação de pagamento do pedido
type OrderStatus string

const (
	OrderStatusPaid    OrderStatus = "paid"
	OrderStatusPending OrderStatus = "pending"
)

// Order representa um pedido do razão de vendas. O campo Amount é
// desnormalizado da soma de qty × unit_price dos itens, mas pode ser
// definido de forma independente (não há constraint no banco).
type Order struct {
	ID         int             `json:"id"`
	Reference  string          `json:"reference"`
	CustomerID int             `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Status     OrderStatus     `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	Items      []*OrderItem    `json:"items,omitempty"`
}

// OrderItem é uma linha do pedido. UnitPrice é o snapshot do preço no
// momento da compra, desacoplado do preço atual do produto.
type OrderItem struct {
	ID        int             `json:"id"`
	OrderID   int             `json:"order_id"`
	ProductID int             `json:"product_id"`
	Qty       int             `json:"qty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// LineTotal retorna qty × unit_price do item
func (i *OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Qty)))
}

// OrderSummary é a projeção de pedido usada na listagem do dashboard
type OrderSummary struct {
	ID        int             `json:"id"`
	Reference string          `json:"reference"`
	Customer  string          `json:"customer"`
	Amount    decimal.Decimal `json:"amount"`
	Status    OrderStatus     `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}
