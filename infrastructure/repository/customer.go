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
	customersTable = "customers"
)

type CustomerRepository interface {
	CreateCustomer(customer *domain.Customer) (*domain.Customer, error)
	GetCustomerByEmail(email string) (*domain.Customer, error)
}

type customerRepository struct {
	conn *postgres.Connection
}

func NewCustomerRepository(conn *postgres.Connection) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

func (r *customerRepository) CreateCustomer(customer *domain.Customer) (*domain.Customer, error) {
	queryBuilder := squirrel.
		Insert(customersTable).
		Columns("name", "email").
		Values(customer.Name, customer.Email).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	customerSQL, customerArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(customerSQL, customerArgs...).Scan(&customer.ID, &customer.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente: %w", err)
	}

	return customer, nil
}

func (r *customerRepository) GetCustomerByEmail(email string) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.conn.QueryRow(
		"SELECT id, name, email, created_at FROM customers WHERE email = $1",
		email,
	).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &customer, nil
}
