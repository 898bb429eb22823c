package ordering_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/revalyt/analytics-api/infrastructure/repository/mocks"
	"github.com/revalyt/analytics-api/internal/domain"
	"github.com/revalyt/analytics-api/internal/usecases/ordering"
	"go.uber.org/mock/gomock"
)

type ordererMocks struct {
	orderRepo    *mocks.MockOrderRepository
	customerRepo *mocks.MockCustomerRepository
	productRepo  *mocks.MockProductRepository
}

func newTestOrderer(ctrl *gomock.Controller) (ordering.Orderer, ordererMocks) {
	m := ordererMocks{
		orderRepo:    mocks.NewMockOrderRepository(ctrl),
		customerRepo: mocks.NewMockCustomerRepository(ctrl),
		productRepo:  mocks.NewMockProductRepository(ctrl),
	}

	return ordering.NewService(m.orderRepo, m.customerRepo, m.productRepo), m
}

func TestPlaceOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, repos := newTestOrderer(ctrl)
	mockOrderRepo := repos.orderRepo
	mockOrderRepo.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(order *domain.Order, items []*domain.OrderItem) (*domain.Order, error) {
			assert.Equal(t, 3, order.CustomerID)
			require.Len(t, items, 2)
			assert.Equal(t, 2, items[0].Qty)
			assert.Equal(t, "39.9", items[0].UnitPrice.String())

			order.ID = 10
			order.Reference = "AB12CD34EF"
			order.Amount = decimal.RequireFromString("99.70")
			order.Items = items
			return order, nil
		})

	order, err := service.PlaceOrder(ordering.NewOrderInput{
		CustomerID: 3,
		Items: []ordering.NewOrderItemInput{
			{ProductID: 1, Qty: 2, UnitPrice: decimal.RequireFromString("39.90")},
			{ProductID: 2, Qty: 1, UnitPrice: decimal.RequireFromString("19.90")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 10, order.ID)
	assert.Equal(t, "AB12CD34EF", order.Reference)
}

func TestPlaceOrder_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada ao repositório deve acontecer em entradas inválidas
	service, _ := newTestOrderer(ctrl)

	tests := []struct {
		name        string
		input       ordering.NewOrderInput
		expectedErr error
	}{
		{
			name: "sem cliente",
			input: ordering.NewOrderInput{
				Items: []ordering.NewOrderItemInput{{ProductID: 1, Qty: 1}},
			},
			expectedErr: ordering.ErrMissingCustomer,
		},
		{
			name:        "sem itens",
			input:       ordering.NewOrderInput{CustomerID: 3},
			expectedErr: ordering.ErrNoItems,
		},
		{
			name: "quantidade zero",
			input: ordering.NewOrderInput{
				CustomerID: 3,
				Items:      []ordering.NewOrderItemInput{{ProductID: 1, Qty: 0}},
			},
			expectedErr: ordering.ErrInvalidQty,
		},
		{
			name: "status desconhecido",
			input: ordering.NewOrderInput{
				CustomerID: 3,
				Status:     "shipped",
				Items:      []ordering.NewOrderItemInput{{ProductID: 1, Qty: 1}},
			},
			expectedErr: ordering.ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := service.PlaceOrder(tt.input)
			assert.Nil(t, order)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestRegisterCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, repos := newTestOrderer(ctrl)

	repos.customerRepo.EXPECT().
		GetCustomerByEmail("ana@example.com").
		Return(nil, nil)

	repos.customerRepo.EXPECT().
		CreateCustomer(gomock.Any()).
		DoAndReturn(func(customer *domain.Customer) (*domain.Customer, error) {
			assert.Equal(t, "Ana Souza", customer.Name)
			assert.Equal(t, "ana@example.com", customer.Email)

			customer.ID = 3
			return customer, nil
		})

	customer, err := service.RegisterCustomer(ordering.NewCustomerInput{
		Name:  "  Ana Souza  ",
		Email: " Ana@Example.com ",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, customer.ID)
	assert.Equal(t, "ana@example.com", customer.Email)
}

func TestRegisterCustomer_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, repos := newTestOrderer(ctrl)

	repos.customerRepo.EXPECT().
		GetCustomerByEmail("ana@example.com").
		Return(&domain.Customer{ID: 3, Email: "ana@example.com"}, nil)

	customer, err := service.RegisterCustomer(ordering.NewCustomerInput{
		Name:  "Ana Souza",
		Email: "ana@example.com",
	})
	assert.Nil(t, customer)
	assert.ErrorIs(t, err, ordering.ErrDuplicateEmail)
}

func TestRegisterCustomer_MissingData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestOrderer(ctrl)

	customer, err := service.RegisterCustomer(ordering.NewCustomerInput{Email: "ana@example.com"})
	assert.Nil(t, customer)
	assert.ErrorIs(t, err, ordering.ErrMissingData)
}

func TestRegisterProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, repos := newTestOrderer(ctrl)

	repos.productRepo.EXPECT().
		GetProductBySKU("SKU-001").
		Return(nil, nil)

	repos.productRepo.EXPECT().
		CreateProduct(gomock.Any()).
		DoAndReturn(func(product *domain.Product) (*domain.Product, error) {
			assert.Equal(t, "SKU-001", product.SKU)
			assert.Equal(t, "Teclado mecânico", product.Title)
			assert.Equal(t, "39.9", product.UnitPrice.String())

			product.ID = 8
			return product, nil
		})

	product, err := service.RegisterProduct(ordering.NewProductInput{
		SKU:       " SKU-001 ",
		Title:     "Teclado mecânico",
		UnitPrice: decimal.RequireFromString("39.90"),
	})
	require.NoError(t, err)
	assert.Equal(t, 8, product.ID)
}

func TestRegisterProduct_DuplicateSKU(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, repos := newTestOrderer(ctrl)

	repos.productRepo.EXPECT().
		GetProductBySKU("SKU-001").
		Return(&domain.Product{ID: 8, SKU: "SKU-001"}, nil)

	product, err := service.RegisterProduct(ordering.NewProductInput{
		SKU:       "SKU-001",
		Title:     "Teclado mecânico",
		UnitPrice: decimal.RequireFromString("39.90"),
	})
	assert.Nil(t, product)
	assert.ErrorIs(t, err, ordering.ErrDuplicateSKU)
}

func TestRegisterProduct_NegativePrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestOrderer(ctrl)

	product, err := service.RegisterProduct(ordering.NewProductInput{
		SKU:       "SKU-001",
		Title:     "Teclado mecânico",
		UnitPrice: decimal.RequireFromString("-1.00"),
	})
	assert.Nil(t, product)
	assert.ErrorIs(t, err, ordering.ErrNegativePrice)
}
