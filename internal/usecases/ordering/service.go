package ordering

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/revalyt/analytics-api/infrastructure/repository"
	"github.com/revalyt/analytics-api/internal/domain"
)

var (
	ErrMissingCustomer = errors.New("pedido sem cliente")
	ErrNoItems         = errors.New("pedido sem itens")
	ErrInvalidQty      = errors.New("quantidade do item deve ser positiva")
	ErrInvalidStatus   = errors.New("status de pedido inválido")
	ErrMissingData     = errors.New("dados obrigatórios ausentes")
	ErrDuplicateEmail  = errors.New("email de cliente já cadastrado")
	ErrDuplicateSKU    = errors.New("SKU de produto já cadastrado")
	ErrNegativePrice   = errors.New("preço unitário não pode ser negativo")
)

// NewOrderInput representa os dados de entrada para criação de um pedido
type NewOrderInput struct {
	CustomerID int
	Status     domain.OrderStatus
	CreatedAt  time.Time
	Items      []NewOrderItemInput
}

type NewOrderItemInput struct {
	ProductID int
	Qty       int
	UnitPrice decimal.Decimal
}

type NewCustomerInput struct {
	Name  string
	Email string
}

type NewProductInput struct {
	SKU       string
	Title     string
	UnitPrice decimal.Decimal
}

type Orderer interface {
	PlaceOrder(input NewOrderInput) (*domain.Order, error)
	RegisterCustomer(input NewCustomerInput) (*domain.Customer, error)
	RegisterProduct(input NewProductInput) (*domain.Product, error)
}

type Service struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
}

func NewService(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
) Orderer {
	return &Service{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
	}
}

// PlaceOrder valida a entrada e grava o pedido com seus itens em uma única
// transação. O valor do pedido é desnormalizado de qty × unit_price e a
// referência curta é gerada na camada de persistência.
func (s *Service) PlaceOrder(input NewOrderInput) (*domain.Order, error) {
	if input.CustomerID <= 0 {
		return nil, ErrMissingCustomer
	}

	if len(input.Items) == 0 {
		return nil, ErrNoItems
	}

	if input.Status != "" && input.Status != domain.OrderStatusPaid && input.Status != domain.OrderStatusPending {
		return nil, ErrInvalidStatus
	}

	items := make([]*domain.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		if item.Qty <= 0 {
			return nil, ErrInvalidQty
		}

		items = append(items, &domain.OrderItem{
			ProductID: item.ProductID,
			Qty:       item.Qty,
			UnitPrice: item.UnitPrice,
		})
	}

	order := &domain.Order{
		CustomerID: input.CustomerID,
		Status:     input.Status,
		CreatedAt:  input.CreatedAt,
	}

	return s.orderRepo.CreateOrder(order, items)
}

// RegisterCustomer cadastra um cliente novo. O email é normalizado e deve
// ser único no razão.
func (s *Service) RegisterCustomer(input NewCustomerInput) (*domain.Customer, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if name == "" || email == "" {
		return nil, ErrMissingData
	}

	existing, err := s.customerRepo.GetCustomerByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	return s.customerRepo.CreateCustomer(&domain.Customer{
		Name:  name,
		Email: email,
	})
}

// RegisterProduct cadastra um produto novo com SKU único
func (s *Service) RegisterProduct(input NewProductInput) (*domain.Product, error) {
	sku := strings.TrimSpace(input.SKU)
	title := strings.TrimSpace(input.Title)

	if sku == "" || title == "" {
		return nil, ErrMissingData
	}

	if input.UnitPrice.IsNegative() {
		return nil, ErrNegativePrice
	}

	existing, err := s.productRepo.GetProductBySKU(sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateSKU
	}

	return s.productRepo.CreateProduct(&domain.Product{
		SKU:       sku,
		Title:     title,
		UnitPrice: input.UnitPrice,
	})
}
