package cmd

import (
	"log/slog"

	httpin "skybite/internal/adapters/in/http"
	"skybite/internal/adapters/out/postgres"
	"skybite/internal/core/application/access"
	"skybite/internal/core/application/usecases/commands"
	"skybite/internal/core/application/usecases/queries"
	"skybite/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignCarrierCommandHandler() commands.AssignCarrierCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCarrierCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchPendingOrderCommandHandler() commands.DispatchPendingOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchPendingOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCarrierCommandHandler() commands.CreateCarrierCommandHandler {
	var f commands.CarrierUoWFactory = FuncCarrierUoWFactory(func() commands.CarrierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCarrierCommandHandler(f)
}

func (c *CompositionRoot) CreateSetCarrierStatusCommandHandler() commands.SetCarrierStatusCommandHandler {
	var f commands.CarrierUoWFactory = FuncCarrierUoWFactory(func() commands.CarrierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetCarrierStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateSetCarrierBatteryCommandHandler() commands.SetCarrierBatteryCommandHandler {
	var f commands.CarrierUoWFactory = FuncCarrierUoWFactory(func() commands.CarrierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetCarrierBatteryCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteCarrierCommandHandler() commands.DeleteCarrierCommandHandler {
	var f commands.CarrierUoWFactory = FuncCarrierUoWFactory(func() commands.CarrierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteCarrierCommandHandler(f)
}

// CreateHTTPServer assembles the API server with every command and query
// handler it dispatches to.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(access.NewGuard(), httpin.Handlers{
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		AdvanceOrderStatus: c.CreateAdvanceOrderStatusCommandHandler(),
		CancelOrder:        c.CreateCancelOrderCommandHandler(),
		AssignCarrier:      c.CreateAssignCarrierCommandHandler(),
		CreateCarrier:      c.CreateCreateCarrierCommandHandler(),
		SetCarrierStatus:   c.CreateSetCarrierStatusCommandHandler(),
		SetCarrierBattery:  c.CreateSetCarrierBatteryCommandHandler(),
		DeleteCarrier:      c.CreateDeleteCarrierCommandHandler(),

		GetOrder:              queries.NewGetOrderQueryHandler(c.gormDB),
		GetOrdersByRestaurant: queries.NewGetOrdersByRestaurantQueryHandler(c.gormDB),
		GetOrdersByUser:       queries.NewGetOrdersByUserQueryHandler(c.gormDB),
		GetOrdersByCarrier:    queries.NewGetOrdersByCarrierQueryHandler(c.gormDB),
		GetDeliveredOrders:    queries.NewGetDeliveredOrdersQueryHandler(c.gormDB),
		GetAssignedOrders:     queries.NewGetAssignedOrdersQueryHandler(c.gormDB),
		GetUnassignedOrders:   queries.NewGetUnassignedOrdersQueryHandler(c.gormDB),
		GetCarriers:           queries.NewGetCarriersQueryHandler(c.gormDB),
		GetCarrier:            queries.NewGetCarrierQueryHandler(c.gormDB),
	})
}

// CreateDroneDispatchJob assembles the scheduled drone auto-assignment job.
func (c *CompositionRoot) CreateDroneDispatchJob(logger *slog.Logger) *jobs.DroneDispatchJob {
	return jobs.NewDroneDispatchJob(c.CreateDispatchPendingOrderCommandHandler(), logger)
}

type FuncCarrierUoWFactory func() commands.CarrierUoW

func (f FuncCarrierUoWFactory) Create() commands.CarrierUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
