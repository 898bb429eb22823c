package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/revalyt/analytics-api/internal/usecases/ordering"
	"github.com/revalyt/analytics-api/pkg/apiErrors"
)

type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CreateProductRequest struct {
	SKU       string          `json:"sku"`
	Title     string          `json:"title"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateCustomer cadastra um cliente para o razão de pedidos
func CreateCustomer(service ordering.Orderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateCustomerRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		customer, err := service.RegisterCustomer(ordering.NewCustomerInput{
			Name:  req.Name,
			Email: req.Email,
		})
		if err != nil {
			handleCatalogError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"id":    customer.ID,
			"name":  customer.Name,
			"email": customer.Email,
		})
	}
}

// CreateProduct cadastra um produto no catálogo
func CreateProduct(service ordering.Orderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateProductRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		product, err := service.RegisterProduct(ordering.NewProductInput{
			SKU:       req.SKU,
			Title:     req.Title,
			UnitPrice: req.UnitPrice,
		})
		if err != nil {
			handleCatalogError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"id":         product.ID,
			"sku":        product.SKU,
			"title":      product.Title,
			"unit_price": product.UnitPrice.InexactFloat64(),
		})
	}
}

func handleCatalogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ordering.ErrMissingData),
		errors.Is(err, ordering.ErrNegativePrice):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	case errors.Is(err, ordering.ErrDuplicateEmail),
		errors.Is(err, ordering.ErrDuplicateSKU):
		apiErrors.WriteError(w, apiErrors.ErrDuplicateResource, err.Error(), nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar cadastro", nil)
	}
}
