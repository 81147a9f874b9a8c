package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderSide string

const (
	OrderSideBuy  OrderSide = "BUY"
	OrderSideSell OrderSide = "SELL"
)

// PortfolioLine is one ticker in an order request. MarketPrice is nil when
// the caller did not supply one; the configured fixed stock price is used
// instead. Lines need not be unique by ticker.
type PortfolioLine struct {
	Ticker      string
	Weight      decimal.Decimal
	MarketPrice *decimal.Decimal
}

// OrderRequest is a validated portfolio split request. The boundary layer
// guarantees the portfolio is non-empty, weights sum to 100 (±0.001),
// TotalAmount is positive and supplied prices are positive.
type OrderRequest struct {
	Portfolio   []PortfolioLine
	TotalAmount decimal.Decimal
	Side        OrderSide
}

type StockAllocation struct {
	Ticker          string
	AllocatedAmount decimal.Decimal
	Quantity        decimal.Decimal
	PriceUsed       decimal.Decimal
}

// Order is the persisted record. Immutable once saved to the ledger.
// Stocks preserves the input portfolio order.
type Order struct {
	ID               string
	Side             OrderSide
	TotalAmount      decimal.Decimal
	Stocks           []StockAllocation
	ExecuteAt        time.Time
	CreatedAt        time.Time
	ProcessingTimeMs int64
}
