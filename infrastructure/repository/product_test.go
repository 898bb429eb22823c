package repository

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/revalyt/analytics-api/internal/domain"
)

func TestCreateProduct(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewProductRepository(conn)

	createdAt := time.Date(2024, 6, 14, 10, 0, 0, 0, time.UTC)
	price := decimalFromString(t, "39.90")

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO products (sku,title,unit_price) VALUES ($1,$2,$3) RETURNING id, created_at")).
		WithArgs("SKU-001", "Teclado mecânico", price).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(8, createdAt))

	product, err := repo.CreateProduct(&domain.Product{
		SKU:       "SKU-001",
		Title:     "Teclado mecânico",
		UnitPrice: price,
	})
	require.NoError(t, err)
	assert.Equal(t, 8, product.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProductBySKU(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewProductRepository(conn)

	createdAt := time.Date(2024, 6, 14, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "sku", "title", "unit_price", "created_at"}).
		AddRow(8, "SKU-001", "Teclado mecânico", "39.90", createdAt)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, sku, title, unit_price, created_at FROM products WHERE sku = $1")).
		WithArgs("SKU-001").
		WillReturnRows(rows)

	product, err := repo.GetProductBySKU("SKU-001")
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "Teclado mecânico", product.Title)
	assert.Equal(t, "39.9", product.UnitPrice.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProductBySKU_NotFound(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewProductRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta("FROM products")).
		WithArgs("SKU-404").
		WillReturnRows(sqlmock.NewRows([]string{"id", "sku", "title", "unit_price", "created_at"}))

	product, err := repo.GetProductBySKU("SKU-404")
	require.NoError(t, err)
	assert.Nil(t, product)
	assert.NoError(t, mock.ExpectationsWereMet())
}
