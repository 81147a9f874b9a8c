package ordersplitter

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/krobus00/order-splitter-service/internal/config"
	"github.com/krobus00/order-splitter-service/internal/entity"
	"github.com/krobus00/order-splitter-service/internal/repository"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidOrderConfig = errors.New("invalid order configuration")
)

// OrderSplitterService turns a validated order request into a persisted
// order: it allocates the amount across the portfolio, schedules execution
// at the next market open, assigns an identity and writes the result to the
// ledger. The identity generator, clock and config resolver are swappable
// for deterministic tests.
type OrderSplitterService struct {
	ledger      *repository.OrderLedgerRepository
	generateID  func() string
	now         func() time.Time
	orderConfig func() config.OrderConfig
}

func NewOrderSplitterService(ledger *repository.OrderLedgerRepository) *OrderSplitterService {
	return &OrderSplitterService{
		ledger:      ledger,
		generateID:  uuid.NewString,
		now:         time.Now,
		orderConfig: config.ResolveOrderConfig,
	}
}

func (s *OrderSplitterService) CreateOrder(ctx context.Context, req entity.OrderRequest) (*entity.Order, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	start := s.now()

	cfg := s.orderConfig()
	if cfg.FixedStockPrice <= 0 || cfg.ShareDecimalPlaces < 0 || cfg.ShareDecimalPlaces > config.MaxShareDecimalPlaces {
		logrus.Errorf("refusing order, invalid order configuration: %+v", cfg)
		return nil, ErrInvalidOrderConfig
	}

	stocks := Allocate(req.Portfolio, req.TotalAmount, cfg)
	executeAt := NextMarketOpen(start)

	createdAt := s.now()
	order := &entity.Order{
		ID:               s.generateID(),
		Side:             req.Side,
		TotalAmount:      req.TotalAmount,
		Stocks:           stocks,
		ExecuteAt:        executeAt,
		CreatedAt:        createdAt,
		ProcessingTimeMs: createdAt.Sub(start).Milliseconds(),
	}

	if err := s.ledger.Save(ctx, order); err != nil {
		logrus.Error(err)
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_id":           order.ID,
		"side":               order.Side,
		"stocks":             len(order.Stocks),
		"processing_time_ms": order.ProcessingTimeMs,
	}).Info("order created")

	return order, nil
}

func (s *OrderSplitterService) GetHistoricOrders(ctx context.Context) ([]*entity.Order, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	orders := s.ledger.FindAll(ctx)
	logrus.Infof("fetched %d historic orders", len(orders))

	return orders, nil
}

func (s *OrderSplitterService) GetOrderByID(ctx context.Context, id string) (*entity.Order, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return s.ledger.FindByID(ctx, id)
}
