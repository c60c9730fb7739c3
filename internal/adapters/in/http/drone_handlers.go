package http

import (
	"net/http"
	"strconv"

	"skybite/internal/core/application/access"
	"skybite/internal/core/application/usecases/commands"
	"skybite/internal/core/application/usecases/queries"
	"skybite/internal/core/domain/model/carrier"
	"skybite/internal/core/domain/model/kernel"
	"skybite/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateDrone handles POST /drone: registers a new fleet drone.
func (s *Server) CreateDrone(c echo.Context) error {
	_, err := s.authorize(c, access.ManageFleet)
	if err != nil {
		return respondError(c, err)
	}

	var req newDroneRequest
	if err = c.Bind(&req); err != nil {
		return respondError(c, errs.NewValueIsRequiredErrorWithCause("request body", err))
	}

	droneID := kernel.NewUUID()
	cmd, err := commands.NewCreateCarrierCommand(droneID, carrier.Drone,
		req.Name, req.BatteryLevel, req.MaxPayloadGrams)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.CreateCarrier.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return s.respondWithDrone(c, http.StatusCreated, droneID)
}

// ListDrones handles GET /drone. The available=true query parameter narrows
// the listing to drones that can take a delivery.
func (s *Server) ListDrones(c echo.Context) error {
	_, err := s.authorize(c, access.ManageFleet)
	if err != nil {
		return respondError(c, err)
	}

	onlyAvailable, _ := strconv.ParseBool(c.QueryParam("available"))
	query, err := queries.NewGetCarriersQuery(carrier.Drone, onlyAvailable)
	if err != nil {
		return respondError(c, err)
	}

	drones, err := s.handlers.GetCarriers.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	response := make([]droneResponse, len(drones))
	for i, d := range drones {
		response[i] = droneResponseFromReadModel(d)
	}

	return c.JSON(http.StatusOK, response)
}

// GetDrone handles GET /drone/:id.
func (s *Server) GetDrone(c echo.Context) error {
	_, err := s.authorize(c, access.ManageFleet)
	if err != nil {
		return respondError(c, err)
	}

	droneID, err := pathID(c.Param("id"))
	if err != nil {
		return respondError(c, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	return s.respondWithDrone(c, http.StatusOK, droneID)
}

// UpdateDroneBattery handles PUT /drone/:id: records a new battery reading.
func (s *Server) UpdateDroneBattery(c echo.Context) error {
	_, err := s.authorize(c, access.ManageFleet)
	if err != nil {
		return respondError(c, err)
	}

	droneID, err := pathID(c.Param("id"))
	if err != nil {
		return respondError(c, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var req updateDroneRequest
	if err = c.Bind(&req); err != nil {
		return respondError(c, errs.NewValueIsRequiredErrorWithCause("request body", err))
	}

	cmd, err := commands.NewSetCarrierBatteryCommand(droneID, req.BatteryLevel)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.SetCarrierBattery.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return s.respondWithDrone(c, http.StatusOK, droneID)
}

// UpdateDroneStatus handles PATCH /drone/:id/status: moves a drone between
// Available, Maintenance, and Offline. InDelivery is reserved for the
// assignment flow and is rejected here.
func (s *Server) UpdateDroneStatus(c echo.Context) error {
	_, err := s.authorize(c, access.ManageFleet)
	if err != nil {
		return respondError(c, err)
	}

	droneID, err := pathID(c.Param("id"))
	if err != nil {
		return respondError(c, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var req updateDroneStatusRequest
	if err = c.Bind(&req); err != nil {
		return respondError(c, errs.NewValueIsRequiredErrorWithCause("request body", err))
	}

	newStatus, err := carrier.StatusFromString(req.Status)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewSetCarrierStatusCommand(droneID, newStatus)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.SetCarrierStatus.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return s.respondWithDrone(c, http.StatusOK, droneID)
}

// DeleteDrone handles DELETE /drone/:id. A drone that is out on a delivery
// cannot be deleted.
func (s *Server) DeleteDrone(c echo.Context) error {
	_, err := s.authorize(c, access.ManageFleet)
	if err != nil {
		return respondError(c, err)
	}

	droneID, err := pathID(c.Param("id"))
	if err != nil {
		return respondError(c, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	cmd, err := commands.NewDeleteCarrierCommand(droneID)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.DeleteCarrier.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// respondWithDrone returns the current read model of the drone after a write.
func (s *Server) respondWithDrone(c echo.Context, status int, droneID kernel.UUID) error {
	query, err := queries.NewGetCarrierQuery(droneID, carrier.Drone)
	if err != nil {
		return respondError(c, err)
	}

	current, err := s.handlers.GetCarrier.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(status, droneResponseFromReadModel(current))
}
