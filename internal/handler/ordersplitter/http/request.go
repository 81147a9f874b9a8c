package http

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/guregu/null/v6"
)

// weightSumTolerance is the absolute tolerance on the weights-sum-to-100
// rule.
const weightSumTolerance = 0.001

type PortfolioLineRequest struct {
	Ticker      string     `json:"ticker" validate:"required"`
	Weight      float64    `json:"weight" validate:"min=0,max=100"`
	MarketPrice null.Float `json:"marketPrice"`
}

type CreateOrderRequest struct {
	Portfolio   []PortfolioLineRequest `json:"portfolio" validate:"required,min=1,dive"`
	TotalAmount float64                `json:"totalAmount" validate:"required,gt=0"`
	OrderType   string                 `json:"orderType" validate:"required,oneof=BUY SELL"`
}

// FieldViolation is one failed validation check, addressed to the offending
// field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	validate     *validator.Validate
	onceValidate sync.Once
)

func getValidator() *validator.Validate {
	onceValidate.Do(func() {
		validate = validator.New()
	})

	return validate
}

// Validate runs the structural checks plus the portfolio rules the tag
// language cannot express: weights summing to 100 (±0.001) and supplied
// market prices being positive. It returns nil when the request is valid;
// the order core is only invoked on a nil result.
func (r *CreateOrderRequest) Validate() []FieldViolation {
	violations := make([]FieldViolation, 0)

	if err := getValidator().Struct(r); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			for _, fieldErr := range validationErrs {
				violations = append(violations, FieldViolation{
					Field:   fieldErr.Namespace(),
					Message: fmt.Sprintf("failed on the '%s' rule", fieldErr.Tag()),
				})
			}
		} else {
			violations = append(violations, FieldViolation{
				Field:   "request",
				Message: err.Error(),
			})
		}
	}

	if len(r.Portfolio) > 0 {
		sum := 0.0
		for _, line := range r.Portfolio {
			sum += line.Weight
		}
		if math.Abs(sum-100) >= weightSumTolerance {
			violations = append(violations, FieldViolation{
				Field:   "portfolio",
				Message: fmt.Sprintf("portfolio weights must sum to 100, got %v", sum),
			})
		}

		for i, line := range r.Portfolio {
			if line.MarketPrice.Valid && line.MarketPrice.Float64 <= 0 {
				violations = append(violations, FieldViolation{
					Field:   fmt.Sprintf("portfolio[%d].marketPrice", i),
					Message: "marketPrice must be positive when supplied",
				})
			}
		}
	}

	if len(violations) == 0 {
		return nil
	}

	return violations
}
