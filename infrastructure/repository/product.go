package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/revalyt/analytics-api/infrastructure/database/postgres"
	"github.com/revalyt/analytics-api/internal/domain"
)

const (
	productsTable = "products"
)

type ProductRepository interface {
	CreateProduct(product *domain.Product) (*domain.Product, error)
	GetProductBySKU(sku string) (*domain.Product, error)
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) CreateProduct(product *domain.Product) (*domain.Product, error) {
	queryBuilder := squirrel.
		Insert(productsTable).
		Columns("sku", "title", "unit_price").
		Values(product.SKU, product.Title, product.UnitPrice).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	productSQL, productArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(productSQL, productArgs...).Scan(&product.ID, &product.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar produto: %w", err)
	}

	return product, nil
}

func (r *productRepository) GetProductBySKU(sku string) (*domain.Product, error) {
	var product domain.Product
	err := r.conn.QueryRow(
		"SELECT id, sku, title, unit_price, created_at FROM products WHERE sku = $1",
		sku,
	).Scan(
		&product.ID,
		&product.SKU,
		&product.Title,
		&product.UnitPrice,
		&product.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &product, nil
}
