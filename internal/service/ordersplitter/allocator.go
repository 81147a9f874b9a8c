package ordersplitter

import (
	"github.com/krobus00/order-splitter-service/internal/config"
	"github.com/krobus00/order-splitter-service/internal/entity"
	"github.com/shopspring/decimal"
)

// allocationPrecision is the number of decimal places kept on intermediate
// dollar allocations. It strips binary floating-point noise before the
// amount is divided by the price; it is not a business rounding rule.
const allocationPrecision = 10

var oneHundred = decimal.NewFromInt(100)

// Allocate splits totalAmount across the portfolio lines proportionally to
// their weights. For each line, in input order:
//
//	priceUsed       = line market price when supplied and positive, else the
//	                  configured fixed stock price
//	allocatedAmount = round(weight/100 × totalAmount, 10 dp)
//	quantity        = round(allocatedAmount / priceUsed, cfg.ShareDecimalPlaces)
//
// Allocate assumes an already validated request (weights summing to 100,
// positive totalAmount) and a validated configuration; it is a pure function
// of its inputs. Duplicate tickers are allocated independently.
func Allocate(lines []entity.PortfolioLine, totalAmount decimal.Decimal, cfg config.OrderConfig) []entity.StockAllocation {
	fallbackPrice := cfg.FallbackPrice()

	allocations := make([]entity.StockAllocation, 0, len(lines))
	for _, line := range lines {
		priceUsed := fallbackPrice
		if line.MarketPrice != nil && line.MarketPrice.IsPositive() {
			priceUsed = *line.MarketPrice
		}

		allocatedAmount := line.Weight.Div(oneHundred).Mul(totalAmount).Round(allocationPrecision)
		quantity := allocatedAmount.Div(priceUsed).Round(int32(cfg.ShareDecimalPlaces))

		allocations = append(allocations, entity.StockAllocation{
			Ticker:          line.Ticker,
			AllocatedAmount: allocatedAmount,
			Quantity:        quantity,
			PriceUsed:       priceUsed,
		})
	}

	return allocations
}
