package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/revalyt/analytics-api/infrastructure/database/postgres"
	"github.com/revalyt/analytics-api/internal/domain"
	"github.com/revalyt/analytics-api/pkg/utils"
)

const (
	ordersTable     = "orders o"
	orderItemsTable = "order_items"
)

type OrderRepository interface {
	AggregateKPIs(start, end time.Time) (*domain.KPIAggregate, error)
	ListPaidOrders(page, pageSize int) ([]*domain.OrderSummary, error)
	CreateOrder(order *domain.Order, items []*domain.OrderItem) (*domain.Order, error)
}

type orderRepository struct {
	conn *postgres.Connection
}

func NewOrderRepository(conn *postgres.Connection) OrderRepository {
	return &orderRepository{
		conn: conn,
	}
}

// AggregateKPIs soma receita e conta pedidos pagos no intervalo meio-aberto
// [start, end). Leitura pura, sem efeitos colaterais.
func (r *orderRepository) AggregateKPIs(start, end time.Time) (*domain.KPIAggregate, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(o.amount), 0) AS revenue", "COUNT(o.id) AS orders").
		From(ordersTable).
		Where(squirrel.Eq{"o.status": domain.OrderStatusPaid}).
		Where(squirrel.GtOrEq{"o.created_at": start}).
		Where(squirrel.Lt{"o.created_at": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	aggregate := &domain.KPIAggregate{}
	err = r.conn.QueryRow(query, args...).Scan(&aggregate.Revenue, &aggregate.Orders)
	if err != nil {
		return nil, fmt.Errorf("erro ao agregar KPIs: %w", err)
	}

	return aggregate, nil
}

// ListPaidOrders retorna pedidos pagos paginados, mais recentes primeiro
func (r *orderRepository) ListPaidOrders(page, pageSize int) ([]*domain.OrderSummary, error) {
	if page < 1 {
		page = 1
	}

	offset := uint64(page-1) * uint64(pageSize)

	query, args, err := squirrel.
		Select("o.id", "o.reference", "c.name AS customer", "o.amount", "o.status", "o.created_at").
		From(ordersTable).
		Join("customers c ON c.id = o.customer_id").
		Where(squirrel.Eq{"o.status": domain.OrderStatusPaid}).
		OrderBy("o.created_at DESC").
		Limit(uint64(pageSize)).
		Offset(offset).
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

	orders := make([]*domain.OrderSummary, 0)
	for rows.Next() {
		order := &domain.OrderSummary{}
		if err := rows.Scan(
			&order.ID,
			&order.Reference,
			&order.Customer,
			&order.Amount,
			&order.Status,
			&order.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear pedido: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return orders, nil
}

// CreateOrder insere o pedido e seus itens em uma única transação.
// O valor do pedido é desnormalizado da soma de qty × unit_price dos itens
// quando não informado.
func (r *orderRepository) CreateOrder(order *domain.Order, items []*domain.OrderItem) (*domain.Order, error) {
	if order.Reference == "" {
		reference, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar referência do pedido: %w", err)
		}
		order.Reference = reference
	}

	if order.Status == "" {
		order.Status = domain.OrderStatusPaid
	}

	if order.Amount.IsZero() && len(items) > 0 {
		total := decimal.Zero
		for _, item := range items {
			total = total.Add(item.LineTotal())
		}
		order.Amount = total
	}

	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}

	err := r.conn.RunInTransaction(func(tx *sql.Tx) error {
		orderSQL, orderArgs, err := squirrel.
			Insert("orders").
			Columns("reference", "customer_id", "amount", "status", "created_at").
			Values(order.Reference, order.CustomerID, order.Amount, order.Status, order.CreatedAt).
			Suffix("RETURNING id").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if err := tx.QueryRow(orderSQL, orderArgs...).Scan(&order.ID); err != nil {
			return fmt.Errorf("erro ao inserir pedido: %w", err)
		}

		for _, item := range items {
			item.OrderID = order.ID

			itemSQL, itemArgs, err := squirrel.
				Insert(orderItemsTable).
				Columns("order_id", "product_id", "qty", "unit_price").
				Values(item.OrderID, item.ProductID, item.Qty, item.UnitPrice).
				Suffix("RETURNING id").
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if err := tx.QueryRow(itemSQL, itemArgs...).Scan(&item.ID); err != nil {
				return fmt.Errorf("erro ao inserir item do pedido: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, err
	}

	order.Items = items
	return order, nil
}
