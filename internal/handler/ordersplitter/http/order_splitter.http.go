package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/krobus00/order-splitter-service/internal/entity"
	"github.com/krobus00/order-splitter-service/internal/repository"
	"github.com/krobus00/order-splitter-service/internal/service/ordersplitter"
	"github.com/shopspring/decimal"
)

// timestampFormat matches the wire format of the service's timestamps:
// RFC 3339 UTC with millisecond precision.
const timestampFormat = "2006-01-02T15:04:05.000Z"

type StockAllocationResponse struct {
	Ticker          string `json:"ticker"`
	AllocatedAmount string `json:"allocatedAmount"`
	Quantity        string `json:"quantity"`
	PriceUsed       string `json:"priceUsed"`
}

type OrderResponse struct {
	ID               string                    `json:"id"`
	OrderType        string                    `json:"orderType"`
	TotalAmount      string                    `json:"totalAmount"`
	Stocks           []StockAllocationResponse `json:"stocks"`
	ExecuteAt        string                    `json:"executeAt"`
	CreatedAt        string                    `json:"createdAt"`
	ProcessingTimeMs int64                     `json:"processingTimeMs"`
}

type Handler struct {
	orderSplitterService *ordersplitter.OrderSplitterService
}

func NewOrderSplitterHTTPHandler(orderSplitterService *ordersplitter.OrderSplitterService) *Handler {
	return &Handler{orderSplitterService: orderSplitterService}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/orders", h.CreateOrder)
	r.Get("/orders", h.GetHistoricOrders)
	r.Get("/orders/{orderID}", h.GetOrderByID)
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid json body"})
		return
	}

	if violations := req.Validate(); violations != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":      "validation failed",
			"violations": violations,
		})
		return
	}

	order, err := h.orderSplitterService.CreateOrder(r.Context(), mapCreateOrderRequest(&req))
	if err != nil {
		switch {
		case errors.Is(err, ordersplitter.ErrInvalidOrderConfig):
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "invalid order configuration"})
		case errors.Is(err, repository.ErrDuplicateOrderID):
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "order id collision"})
		default:
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "internal server error"})
		}
		return
	}

	writeJSON(w, http.StatusCreated, mapOrderToHTTPResponse(order))
}

func (h *Handler) GetHistoricOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderSplitterService.GetHistoricOrders(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "internal server error"})
		return
	}

	resp := make([]*OrderResponse, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, mapOrderToHTTPResponse(order))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	order, err := h.orderSplitterService.GetOrderByID(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrOrderNotFound):
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "order not found"})
		default:
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "internal server error"})
		}
		return
	}

	writeJSON(w, http.StatusOK, mapOrderToHTTPResponse(order))
}

func mapCreateOrderRequest(req *CreateOrderRequest) entity.OrderRequest {
	portfolio := make([]entity.PortfolioLine, 0, len(req.Portfolio))
	for _, line := range req.Portfolio {
		var marketPrice *decimal.Decimal
		if line.MarketPrice.Valid {
			v := decimal.NewFromFloat(line.MarketPrice.Float64)
			marketPrice = &v
		}

		portfolio = append(portfolio, entity.PortfolioLine{
			Ticker:      strings.TrimSpace(line.Ticker),
			Weight:      decimal.NewFromFloat(line.Weight),
			MarketPrice: marketPrice,
		})
	}

	return entity.OrderRequest{
		Portfolio:   portfolio,
		TotalAmount: decimal.NewFromFloat(req.TotalAmount),
		Side:        entity.OrderSide(strings.ToUpper(req.OrderType)),
	}
}

func mapOrderToHTTPResponse(order *entity.Order) *OrderResponse {
	stocks := make([]StockAllocationResponse, 0, len(order.Stocks))
	for _, stock := range order.Stocks {
		stocks = append(stocks, StockAllocationResponse{
			Ticker:          stock.Ticker,
			AllocatedAmount: stock.AllocatedAmount.String(),
			Quantity:        stock.Quantity.String(),
			PriceUsed:       stock.PriceUsed.String(),
		})
	}

	return &OrderResponse{
		ID:               order.ID,
		OrderType:        string(order.Side),
		TotalAmount:      order.TotalAmount.String(),
		Stocks:           stocks,
		ExecuteAt:        order.ExecuteAt.UTC().Format(timestampFormat),
		CreatedAt:        order.CreatedAt.UTC().Format(timestampFormat),
		ProcessingTimeMs: order.ProcessingTimeMs,
	}
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}
