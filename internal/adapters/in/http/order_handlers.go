package http

import (
	"net/http"

	"skybite/internal/core/application/access"
	"skybite/internal/core/application/usecases/commands"
	"skybite/internal/core/application/usecases/queries"
	"skybite/internal/core/domain/model/carrier"
	"skybite/internal/core/domain/model/kernel"
	"skybite/internal/core/domain/model/order"
	"skybite/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /order/newOrder. The ordering customer is the
// authenticated caller; the total is derived from the item price snapshots.
func (s *Server) CreateOrder(c echo.Context) error {
	actor, err := s.authorize(c, access.CreateOrder)
	if err != nil {
		return respondError(c, err)
	}

	var req newOrderRequest
	if err = c.Bind(&req); err != nil {
		return respondError(c, errs.NewValueIsRequiredErrorWithCause("request body", err))
	}

	restaurantID, err := pathID(req.RestaurantID)
	if err != nil {
		return respondError(c, errs.NewValueIsInvalidErrorWithCause("restaurantId", err))
	}
	addressID, err := pathID(req.AddressID)
	if err != nil {
		return respondError(c, errs.NewValueIsInvalidErrorWithCause("addressId", err))
	}
	paymentID, err := pathID(req.PaymentID)
	if err != nil {
		return respondError(c, errs.NewValueIsInvalidErrorWithCause("paymentId", err))
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, entry := range req.Items {
		item, itemErr := parseOrderItem(entry)
		if itemErr != nil {
			return respondError(c, itemErr)
		}
		items = append(items, item)
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), actor.ID,
		restaurantID, addressID, paymentID, items)
	if err != nil {
		return respondError(c, err)
	}

	created, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, orderResponseFromAggregate(created))
}

// UpdateOrderByRestaurant handles PUT /order/updateOrder/:id, the
// restaurant-side status changes (accept, start preparing, cancel).
func (s *Server) UpdateOrderByRestaurant(c echo.Context) error {
	return s.updateOrderStatus(c, access.ConfirmOrder)
}

// UpdateOrderByDelivery handles PUT /order/updateOrderStatus/:id, the
// delivery-side status changes (picked up, delivered). Reaching Delivered
// releases the bound carrier in the same transaction.
func (s *Server) UpdateOrderByDelivery(c echo.Context) error {
	return s.updateOrderStatus(c, access.ProgressDelivery)
}

// updateOrderStatus is the shared body of the two update endpoints; they
// differ only in the capability that gates them. A Cancelled target routes
// through the cancellation use case.
func (s *Server) updateOrderStatus(c echo.Context, action access.Action) error {
	_, err := s.authorize(c, action)
	if err != nil {
		return respondError(c, err)
	}

	orderID, err := pathID(c.Param("id"))
	if err != nil {
		return respondError(c, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var req updateOrderRequest
	if err = c.Bind(&req); err != nil {
		return respondError(c, errs.NewValueIsRequiredErrorWithCause("request body", err))
	}

	newStatus, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(c, err)
	}

	if newStatus == order.Cancelled {
		cmd, cmdErr := commands.NewCancelOrderCommand(orderID)
		if cmdErr != nil {
			return respondError(c, cmdErr)
		}
		if handleErr := s.handlers.CancelOrder.Handle(c.Request().Context(), cmd); handleErr != nil {
			return respondError(c, handleErr)
		}
	} else {
		cmd, cmdErr := commands.NewAdvanceOrderStatusCommand(orderID, newStatus)
		if cmdErr != nil {
			return respondError(c, cmdErr)
		}
		if handleErr := s.handlers.AdvanceOrderStatus.Handle(c.Request().Context(), cmd); handleErr != nil {
			return respondError(c, handleErr)
		}
	}

	return s.respondWithOrder(c, orderID)
}

// AssignDeliveryman handles PUT /order/assignDeliveryMan/:id.
func (s *Server) AssignDeliveryman(c echo.Context) error {
	return s.assignCarrier(c, carrier.Deliveryman)
}

// AssignDrone handles PUT /order/assignDrone/:id.
func (s *Server) AssignDrone(c echo.Context) error {
	return s.assignCarrier(c, carrier.Drone)
}

func (s *Server) assignCarrier(c echo.Context, kind carrier.Kind) error {
	_, err := s.authorize(c, access.AssignCarrier)
	if err != nil {
		return respondError(c, err)
	}

	orderID, err := pathID(c.Param("id"))
	if err != nil {
		return respondError(c, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var req assignCarrierRequest
	if err = c.Bind(&req); err != nil {
		return respondError(c, errs.NewValueIsRequiredErrorWithCause("request body", err))
	}
	carrierID, err := pathID(req.CarrierID)
	if err != nil {
		return respondError(c, errs.NewValueIsInvalidErrorWithCause("carrierId", err))
	}

	cmd, err := commands.NewAssignCarrierCommand(orderID, carrierID, kind)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.AssignCarrier.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return s.respondWithOrder(c, orderID)
}

// GetOrdersByRestaurant handles GET /order/getOrdersByResId/:id.
func (s *Server) GetOrdersByRestaurant(c echo.Context) error {
	_, err := s.authorize(c, access.ListRestaurantOrders)
	if err != nil {
		return respondError(c, err)
	}

	restaurantID, err := pathID(c.Param("id"))
	if err != nil {
		return respondError(c, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	query, err := queries.NewGetOrdersByRestaurantQuery(restaurantID)
	if err != nil {
		return respondError(c, err)
	}

	orders, err := s.handlers.GetOrdersByRestaurant.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, orderListResponse(orders))
}

// GetDeliveredOrders handles GET /order/getAllDeliveredOrders.
func (s *Server) GetDeliveredOrders(c echo.Context) error {
	_, err := s.authorize(c, access.ListDeliveryOrders)
	if err != nil {
		return respondError(c, err)
	}

	orders, err := s.handlers.GetDeliveredOrders.Handle(c.Request().Context(),
		queries.NewGetDeliveredOrdersQuery())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, orderListResponse(orders))
}

// GetAcceptedOrders handles GET /order/getAllAcceptedOrders: active orders
// with a carrier assigned.
func (s *Server) GetAcceptedOrders(c echo.Context) error {
	_, err := s.authorize(c, access.ListDeliveryOrders)
	if err != nil {
		return respondError(c, err)
	}

	orders, err := s.handlers.GetAssignedOrders.Handle(c.Request().Context(),
		queries.NewGetAssignedOrdersQuery())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, orderListResponse(orders))
}

// GetUnassignedOrders handles GET /order/getAllOrders: active orders still
// waiting for a carrier.
func (s *Server) GetUnassignedOrders(c echo.Context) error {
	_, err := s.authorize(c, access.ListDeliveryOrders)
	if err != nil {
		return respondError(c, err)
	}

	orders, err := s.handlers.GetUnassignedOrders.Handle(c.Request().Context(),
		queries.NewGetUnassignedOrdersQuery())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, orderListResponse(orders))
}

// GetOrdersByDeliveryman handles GET /order/getOrdersByDelId/:id.
func (s *Server) GetOrdersByDeliveryman(c echo.Context) error {
	return s.getOrdersByCarrier(c, carrier.Deliveryman)
}

// GetOrdersByDrone handles GET /order/getOrdersByDroneId/:id.
func (s *Server) GetOrdersByDrone(c echo.Context) error {
	return s.getOrdersByCarrier(c, carrier.Drone)
}

func (s *Server) getOrdersByCarrier(c echo.Context, kind carrier.Kind) error {
	_, err := s.authorize(c, access.ListDeliveryOrders)
	if err != nil {
		return respondError(c, err)
	}

	carrierID, err := pathID(c.Param("id"))
	if err != nil {
		return respondError(c, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	query, err := queries.NewGetOrdersByCarrierQuery(carrierID, kind)
	if err != nil {
		return respondError(c, err)
	}

	orders, err := s.handlers.GetOrdersByCarrier.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, orderListResponse(orders))
}

// GetOwnOrders handles GET /order/getOrdersByUserId. The user id comes from
// the bearer token, so a customer can only list their own history.
func (s *Server) GetOwnOrders(c echo.Context) error {
	actor, err := s.authorize(c, access.ListOwnOrders)
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetOrdersByUserQuery(actor.ID)
	if err != nil {
		return respondError(c, err)
	}

	orders, err := s.handlers.GetOrdersByUser.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, orderListResponse(orders))
}

// respondWithOrder returns the current read model of the order after a write.
func (s *Server) respondWithOrder(c echo.Context, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(c, err)
	}

	current, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, orderResponseFromReadModel(current))
}

func parseOrderItem(entry newOrderItemEntry) (order.Item, error) {
	productID, err := pathID(entry.ProductID)
	if err != nil {
		return order.Item{}, errs.NewValueIsInvalidErrorWithCause("productId", err)
	}

	unitPrice, err := kernel.MoneyFromString(entry.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(productID, entry.Quantity, unitPrice)
}
