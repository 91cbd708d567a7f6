package cmd

import (
	"laundryops/internal/adapters/out/postgres"
	"laundryops/internal/core/application/usecases/commands"
	"laundryops/internal/core/application/usecases/queries"
	"laundryops/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	classifier services.DeliveryClassifier
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	classifierConfig := services.DefaultClassifierConfig()
	if config.ClassifierValueCeiling > 0 {
		classifierConfig.ValueCeiling = config.ClassifierValueCeiling
	}
	if config.ClassifierWeightCeilingKg > 0 {
		classifierConfig.WeightCeilingKg = config.ClassifierWeightCeilingKg
	}
	if config.ClassifierGarmentCeiling > 0 {
		classifierConfig.GarmentCeiling = config.ClassifierGarmentCeiling
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		classifier: services.NewDeliveryClassifier(classifierConfig),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) assignmentUoWFactory() commands.AssignmentUoWFactory {
	return FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateBranchCommandHandler() commands.CreateBranchCommandHandler {
	return commands.NewCreateBranchCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateRouteOrderCommandHandler() commands.RouteOrderCommandHandler {
	return commands.NewRouteOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateDispatchTransferCommandHandler() commands.DispatchTransferCommandHandler {
	return commands.NewDispatchTransferCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkOrderReceivedCommandHandler() commands.MarkOrderReceivedCommandHandler {
	return commands.NewMarkOrderReceivedCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignWorkstationCommandHandler() commands.AssignWorkstationCommandHandler {
	return commands.NewAssignWorkstationCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAutoAssignWorkstationCommandHandler() commands.AutoAssignWorkstationCommandHandler {
	return commands.NewAutoAssignWorkstationCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateStartProcessingCommandHandler() commands.StartProcessingCommandHandler {
	return commands.NewStartProcessingCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteProcessingCommandHandler() commands.CompleteProcessingCommandHandler {
	return commands.NewCompleteProcessingCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateRecordGarmentWorkCommandHandler() commands.RecordGarmentWorkCommandHandler {
	return commands.NewRecordGarmentWorkCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateClassifyOrderCommandHandler() commands.ClassifyOrderCommandHandler {
	return commands.NewClassifyOrderCommandHandler(c.orderUoWFactory(), c.classifier)
}

func (c *CompositionRoot) CreateOverrideClassificationCommandHandler() commands.OverrideClassificationCommandHandler {
	return commands.NewOverrideClassificationCommandHandler(c.orderUoWFactory(), c.classifier)
}

func (c *CompositionRoot) CreateCreateWorkstationAssignmentCommandHandler() commands.CreateWorkstationAssignmentCommandHandler {
	return commands.NewCreateWorkstationAssignmentCommandHandler(c.assignmentUoWFactory())
}

func (c *CompositionRoot) CreateDeactivateWorkstationAssignmentCommandHandler() commands.DeactivateWorkstationAssignmentCommandHandler {
	return commands.NewDeactivateWorkstationAssignmentCommandHandler(c.assignmentUoWFactory())
}

func (c *CompositionRoot) CreateAssignReceivedOrderCommandHandler() commands.AssignReceivedOrderCommandHandler {
	return commands.NewAssignReceivedOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateGetOrdersPendingRoutingQueryHandler() queries.GetOrdersPendingRoutingQueryHandler {
	return queries.NewGetOrdersPendingRoutingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersInTransitQueryHandler() queries.GetOrdersInTransitQueryHandler {
	return queries.NewGetOrdersInTransitQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByStageQueryHandler() queries.GetOrdersByStageQueryHandler {
	return queries.NewGetOrdersByStageQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByStaffQueryHandler() queries.GetOrdersByStaffQueryHandler {
	return queries.NewGetOrdersByStaffQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersReadyForReturnQueryHandler() queries.GetOrdersReadyForReturnQueryHandler {
	return queries.NewGetOrdersReadyForReturnQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBranchQueueDepthQueryHandler() queries.GetBranchQueueDepthQueryHandler {
	return queries.NewGetBranchQueueDepthQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStaffPerformanceQueryHandler() queries.GetStaffPerformanceQueryHandler {
	return queries.NewGetStaffPerformanceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateValidateDeliveryScheduleQueryHandler() queries.ValidateDeliveryScheduleQueryHandler {
	return queries.NewValidateDeliveryScheduleQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateClassifyDeliveryQueryHandler() queries.ClassifyDeliveryQueryHandler {
	return queries.NewClassifyDeliveryQueryHandler(c.gormDB, c.classifier)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
