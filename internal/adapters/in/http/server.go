// Package http exposes the marketplace API over echo. The route table keeps
// the legacy frontend paths; every route is bearer-authenticated and gated
// through the access guard's capability table.
package http

import (
	"skybite/internal/core/application/access"
	"skybite/internal/core/application/usecases/commands"
	"skybite/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Handlers groups the command and query handlers the server dispatches to.
type Handlers struct {
	CreateOrder        commands.CreateOrderCommandHandler
	AdvanceOrderStatus commands.AdvanceOrderStatusCommandHandler
	CancelOrder        commands.CancelOrderCommandHandler
	AssignCarrier      commands.AssignCarrierCommandHandler
	CreateCarrier      commands.CreateCarrierCommandHandler
	SetCarrierStatus   commands.SetCarrierStatusCommandHandler
	SetCarrierBattery  commands.SetCarrierBatteryCommandHandler
	DeleteCarrier      commands.DeleteCarrierCommandHandler

	GetOrder              queries.GetOrderQueryHandler
	GetOrdersByRestaurant queries.GetOrdersByRestaurantQueryHandler
	GetOrdersByUser       queries.GetOrdersByUserQueryHandler
	GetOrdersByCarrier    queries.GetOrdersByCarrierQueryHandler
	GetDeliveredOrders    queries.GetDeliveredOrdersQueryHandler
	GetAssignedOrders     queries.GetAssignedOrdersQueryHandler
	GetUnassignedOrders   queries.GetUnassignedOrdersQueryHandler
	GetCarriers           queries.GetCarriersQueryHandler
	GetCarrier            queries.GetCarrierQueryHandler
}

// Server handles HTTP requests, coordinating between the echo routes and the
// application use cases.
type Server struct {
	guard    *access.Guard
	handlers Handlers
}

// NewServer creates an HTTP server dispatching to the given handlers.
func NewServer(guard *access.Guard, handlers Handlers) *Server {
	return &Server{
		guard:    guard,
		handlers: handlers,
	}
}

// RegisterRoutes wires the API route table onto the echo instance. The order
// paths match the legacy frontend verbatim.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	auth := AuthMiddleware(jwtSecret)

	orders := e.Group("/order", auth)
	orders.POST("/newOrder", s.CreateOrder)
	orders.PUT("/updateOrder/:id", s.UpdateOrderByRestaurant)
	orders.PUT("/updateOrderStatus/:id", s.UpdateOrderByDelivery)
	orders.PUT("/assignDeliveryMan/:id", s.AssignDeliveryman)
	orders.PUT("/assignDrone/:id", s.AssignDrone)
	orders.GET("/getOrdersByResId/:id", s.GetOrdersByRestaurant)
	orders.GET("/getAllDeliveredOrders", s.GetDeliveredOrders)
	orders.GET("/getAllAcceptedOrders", s.GetAcceptedOrders)
	orders.GET("/getAllOrders", s.GetUnassignedOrders)
	orders.GET("/getOrdersByDelId/:id", s.GetOrdersByDeliveryman)
	orders.GET("/getOrdersByDroneId/:id", s.GetOrdersByDrone)
	orders.GET("/getOrdersByUserId", s.GetOwnOrders)

	drones := e.Group("/drone", auth)
	drones.POST("", s.CreateDrone)
	drones.GET("", s.ListDrones)
	drones.GET("/:id", s.GetDrone)
	drones.PUT("/:id", s.UpdateDroneBattery)
	drones.PATCH("/:id/status", s.UpdateDroneStatus)
	drones.DELETE("/:id", s.DeleteDrone)
}

// authorize resolves the caller and checks the capability table.
func (s *Server) authorize(c echo.Context, action access.Action) (Actor, error) {
	actor, err := actorFromContext(c)
	if err != nil {
		return Actor{}, err
	}
	if err = s.guard.Authorize(actor.Role, action); err != nil {
		return Actor{}, err
	}
	return actor, nil
}
