package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/revalyt/analytics-api/internal/domain"
	"github.com/revalyt/analytics-api/internal/usecases/analyzing"
	"github.com/revalyt/analytics-api/internal/usecases/ordering"
	"github.com/revalyt/analytics-api/pkg/apiErrors"
)

// KPIResponse expõe os KPIs como números JSON, convertendo os decimais
// apenas na borda de serialização
type KPIResponse struct {
	Revenue float64 `json:"revenue"`
	Orders  int64   `json:"orders"`
	AOV     float64 `json:"aov"`
}

type OrderSummaryResponse struct {
	ID        int     `json:"id"`
	Reference string  `json:"reference"`
	Customer  string  `json:"customer"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}

type CreateOrderRequest struct {
	CustomerID int                      `json:"customer_id"`
	Status     string                   `json:"status"`
	Items      []CreateOrderItemRequest `json:"items"`
}

type CreateOrderItemRequest struct {
	ProductID int             `json:"product_id"`
	Qty       int             `json:"qty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// GetKPIs retorna os KPIs agregados do intervalo solicitado.
// Limites ausentes ou malformados caem nos últimos 30 dias.
func GetKPIs(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		startStr := r.URL.Query().Get("start")
		endStr := r.URL.Query().Get("end")

		start, end := analyzing.ParseRange(startStr, endStr, time.Now())

		result, err := service.ComputeKPIs(start, end)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao computar KPIs", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(KPIResponse{
			Revenue: result.Revenue.InexactFloat64(),
			Orders:  result.Orders,
			AOV:     result.AOV.InexactFloat64(),
		})
	}
}

// ListOrders retorna pedidos pagos paginados, mais recentes primeiro
func ListOrders(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := 1
		if pageStr := r.URL.Query().Get("page"); pageStr != "" {
			parsed, err := strconv.Atoi(pageStr)
			if err != nil || parsed < 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro page inválido", nil)
				return
			}
			page = parsed
		}

		orders, err := service.ListPaidOrders(page)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar pedidos", nil)
			return
		}

		results := make([]OrderSummaryResponse, 0, len(orders))
		for _, order := range orders {
			results = append(results, OrderSummaryResponse{
				ID:        order.ID,
				Reference: order.Reference,
				Customer:  order.Customer,
				Amount:    order.Amount.InexactFloat64(),
				Status:    string(order.Status),
				CreatedAt: order.CreatedAt.Format(time.RFC3339),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"page":    page,
			"results": results,
		})
	}
}

// CreateOrder registra um pedido com seus itens no razão
func CreateOrder(service ordering.Orderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateOrderRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		items := make([]ordering.NewOrderItemInput, 0, len(req.Items))
		for _, item := range req.Items {
			items = append(items, ordering.NewOrderItemInput{
				ProductID: item.ProductID,
				Qty:       item.Qty,
				UnitPrice: item.UnitPrice,
			})
		}

		order, err := service.PlaceOrder(ordering.NewOrderInput{
			CustomerID: req.CustomerID,
			Status:     domain.OrderStatus(req.Status),
			Items:      items,
		})
		if err != nil {
			handleOrderError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"id":        order.ID,
			"reference": order.Reference,
			"amount":    order.Amount.InexactFloat64(),
			"status":    string(order.Status),
		})
	}
}

func handleOrderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ordering.ErrMissingCustomer),
		errors.Is(err, ordering.ErrNoItems),
		errors.Is(err, ordering.ErrInvalidQty),
		errors.Is(err, ordering.ErrInvalidStatus):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar pedido", nil)
	}
}
