package commands

import (
	"context"

	"skybite/internal/core/domain/model/kernel"
	"skybite/internal/core/domain/model/order"

	"github.com/samber/lo"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Computes the total from the item price snapshots and persists the order
// in the Placed status with no carrier bound.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the created order.
// Uses a transaction to ensure the order is properly persisted or rolled
// back on error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	totalAmount := lo.Reduce(cmd.Items(), func(sum kernel.Money, item order.Item, _ int) kernel.Money {
		return sum.Add(item.Total())
	}, kernel.Money{})

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.UserID(),
		cmd.RestaurantID(),
		cmd.AddressID(),
		cmd.PaymentID(),
		cmd.Items(),
		totalAmount,
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
