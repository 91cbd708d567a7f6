// Package http provides the inbound HTTP adapter: an echo server translating
// the REST surface into commands and queries.
package http

import (
	"net/http"
	"strconv"
	"time"

	"laundryops/internal/core/application/usecases/commands"
	"laundryops/internal/core/application/usecases/queries"
	"laundryops/internal/core/domain/model/branch"
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createBranchHandler         commands.CreateBranchCommandHandler
	createOrderHandler          commands.CreateOrderCommandHandler
	routeOrderHandler           commands.RouteOrderCommandHandler
	dispatchTransferHandler     commands.DispatchTransferCommandHandler
	markReceivedHandler         commands.MarkOrderReceivedCommandHandler
	assignWorkstationHandler    commands.AssignWorkstationCommandHandler
	autoAssignHandler           commands.AutoAssignWorkstationCommandHandler
	startProcessingHandler      commands.StartProcessingCommandHandler
	completeProcessingHandler   commands.CompleteProcessingCommandHandler
	recordGarmentWorkHandler    commands.RecordGarmentWorkCommandHandler
	classifyOrderHandler        commands.ClassifyOrderCommandHandler
	overrideClassHandler        commands.OverrideClassificationCommandHandler
	createAssignmentHandler     commands.CreateWorkstationAssignmentCommandHandler
	deactivateAssignmentHandler commands.DeactivateWorkstationAssignmentCommandHandler

	// Query handlers
	pendingRoutingHandler   queries.GetOrdersPendingRoutingQueryHandler
	inTransitHandler        queries.GetOrdersInTransitQueryHandler
	byStageHandler          queries.GetOrdersByStageQueryHandler
	byStaffHandler          queries.GetOrdersByStaffQueryHandler
	readyForReturnHandler   queries.GetOrdersReadyForReturnQueryHandler
	queueDepthHandler       queries.GetBranchQueueDepthQueryHandler
	staffPerformanceHandler queries.GetStaffPerformanceQueryHandler
	validateScheduleHandler queries.ValidateDeliveryScheduleQueryHandler
	classifyPreviewHandler  queries.ClassifyDeliveryQueryHandler
}

// ServerHandlers bundles the command and query handlers the server needs.
type ServerHandlers struct {
	CreateBranch         commands.CreateBranchCommandHandler
	CreateOrder          commands.CreateOrderCommandHandler
	RouteOrder           commands.RouteOrderCommandHandler
	DispatchTransfer     commands.DispatchTransferCommandHandler
	MarkReceived         commands.MarkOrderReceivedCommandHandler
	AssignWorkstation    commands.AssignWorkstationCommandHandler
	AutoAssign           commands.AutoAssignWorkstationCommandHandler
	StartProcessing      commands.StartProcessingCommandHandler
	CompleteProcessing   commands.CompleteProcessingCommandHandler
	RecordGarmentWork    commands.RecordGarmentWorkCommandHandler
	ClassifyOrder        commands.ClassifyOrderCommandHandler
	OverrideClass        commands.OverrideClassificationCommandHandler
	CreateAssignment     commands.CreateWorkstationAssignmentCommandHandler
	DeactivateAssignment commands.DeactivateWorkstationAssignmentCommandHandler

	PendingRouting   queries.GetOrdersPendingRoutingQueryHandler
	InTransit        queries.GetOrdersInTransitQueryHandler
	ByStage          queries.GetOrdersByStageQueryHandler
	ByStaff          queries.GetOrdersByStaffQueryHandler
	ReadyForReturn   queries.GetOrdersReadyForReturnQueryHandler
	QueueDepth       queries.GetBranchQueueDepthQueryHandler
	StaffPerformance queries.GetStaffPerformanceQueryHandler
	ValidateSchedule queries.ValidateDeliveryScheduleQueryHandler
	ClassifyPreview  queries.ClassifyDeliveryQueryHandler
}

// NewServer creates an HTTP server wired to the given handlers.
func NewServer(handlers ServerHandlers) *Server {
	return &Server{
		createBranchHandler:         handlers.CreateBranch,
		createOrderHandler:          handlers.CreateOrder,
		routeOrderHandler:           handlers.RouteOrder,
		dispatchTransferHandler:     handlers.DispatchTransfer,
		markReceivedHandler:         handlers.MarkReceived,
		assignWorkstationHandler:    handlers.AssignWorkstation,
		autoAssignHandler:           handlers.AutoAssign,
		startProcessingHandler:      handlers.StartProcessing,
		completeProcessingHandler:   handlers.CompleteProcessing,
		recordGarmentWorkHandler:    handlers.RecordGarmentWork,
		classifyOrderHandler:        handlers.ClassifyOrder,
		overrideClassHandler:        handlers.OverrideClass,
		createAssignmentHandler:     handlers.CreateAssignment,
		deactivateAssignmentHandler: handlers.DeactivateAssignment,

		pendingRoutingHandler:   handlers.PendingRouting,
		inTransitHandler:        handlers.InTransit,
		byStageHandler:          handlers.ByStage,
		byStaffHandler:          handlers.ByStaff,
		readyForReturnHandler:   handlers.ReadyForReturn,
		queueDepthHandler:       handlers.QueueDepth,
		staffPerformanceHandler: handlers.StaffPerformance,
		validateScheduleHandler: handlers.ValidateSchedule,
		classifyPreviewHandler:  handlers.ClassifyPreview,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/branches", s.CreateBranch)
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:orderID/route", s.RouteOrder)
	api.POST("/orders/:orderID/dispatch", s.DispatchTransfer)
	api.POST("/orders/:orderID/receive", s.ReceiveOrder)
	api.POST("/orders/:orderID/assign", s.AssignWorkstation)
	api.POST("/orders/:orderID/auto-assign", s.AutoAssignWorkstation)
	api.POST("/orders/:orderID/start", s.StartProcessing)
	api.POST("/orders/:orderID/complete", s.CompleteProcessing)
	api.POST("/orders/:orderID/garments/:index/work", s.RecordGarmentWork)
	api.POST("/orders/:orderID/classification", s.ClassifyOrder)
	api.PUT("/orders/:orderID/classification", s.OverrideClassification)
	api.GET("/orders/:orderID/classification/preview", s.ClassificationPreview)
	api.GET("/orders/:orderID/schedule/validate", s.ValidateSchedule)

	api.POST("/workstation-assignments", s.CreateWorkstationAssignment)
	api.DELETE("/workstation-assignments", s.DeactivateWorkstationAssignment)

	api.GET("/branches/:branchID/orders/pending", s.OrdersPendingRouting)
	api.GET("/branches/:branchID/orders/in-transit", s.OrdersInTransit)
	api.GET("/branches/:branchID/orders/ready", s.OrdersReadyForReturn)
	api.GET("/branches/:branchID/stages/:stage/orders", s.OrdersByStage)
	api.GET("/branches/:branchID/queue-depth", s.BranchQueueDepth)
	api.GET("/branches/:branchID/staff-performance", s.StaffPerformance)
	api.GET("/staff/:staffID/orders", s.OrdersByStaff)
}

// fail writes the JSON error body for an application error.
func fail(ctx echo.Context, err error) error {
	code := statusForError(err)
	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

// badRequest writes a 400 error body.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

// pathUUID parses a UUID path parameter.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// CreateBranch handles POST /api/v1/branches.
func (s *Server) CreateBranch(ctx echo.Context) error {
	var req NewBranchRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var mainBranchID *kernel.UUID
	if req.MainBranchID != nil {
		id, err := kernel.UUIDFromString(*req.MainBranchID)
		if err != nil {
			return badRequest(ctx, "Invalid main_branch_id")
		}
		mainBranchID = &id
	}

	branchID := kernel.NewUUID()
	cmd, err := commands.NewCreateBranchCommand(branchID, req.Name, branch.Kind(req.Kind), mainBranchID, req.SortingWindowHours)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.createBranchHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"branch_id": branchID.String()})
}

// CreateOrder handles POST /api/v1/orders. Intake routes the order
// immediately, so the response is just the assigned identifier; routing
// state is readable right after via the order queries.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	originBranchID, err := kernel.UUIDFromString(req.OriginBranchID)
	if err != nil {
		return badRequest(ctx, "Invalid origin_branch_id")
	}

	categories := make([]order.GarmentType, 0, len(req.Garments))
	for _, g := range req.Garments {
		categories = append(categories, order.GarmentType(g))
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, originBranchID, categories, req.TotalValue)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderCreatedResponse{OrderID: orderID.String()})
}

// RouteOrder handles POST /api/v1/orders/:orderID/route.
func (s *Server) RouteOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req RouteOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor_id")
	}

	cmd, err := commands.NewRouteOrderCommand(orderID, actorID)
	if err != nil {
		return fail(ctx, err)
	}

	resp, err := s.routeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	out := RoutingResponse{
		ProcessingBranchID: resp.ProcessingBranchID.String(),
		RoutingStatus:      resp.RoutingStatus.String(),
	}
	if resp.Stage != nil {
		v := resp.Stage.String()
		out.Stage = &v
	}
	if resp.StaffID != nil {
		v := resp.StaffID.String()
		out.StaffID = &v
	}

	return ctx.JSON(http.StatusOK, out)
}

// DispatchTransfer handles POST /api/v1/orders/:orderID/dispatch.
func (s *Server) DispatchTransfer(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req RouteOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor_id")
	}

	cmd, err := commands.NewDispatchTransferCommand(orderID, actorID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.dispatchTransferHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReceiveOrder handles POST /api/v1/orders/:orderID/receive.
func (s *Server) ReceiveOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req ReceiveOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	receiverID, err := kernel.UUIDFromString(req.ReceiverID)
	if err != nil {
		return badRequest(ctx, "Invalid receiver_id")
	}

	cmd, err := commands.NewMarkOrderReceivedCommand(orderID, receiverID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.markReceivedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignWorkstation handles POST /api/v1/orders/:orderID/assign.
func (s *Server) AssignWorkstation(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req AssignWorkstationRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var staffID *kernel.UUID
	if req.StaffID != nil {
		id, idErr := kernel.UUIDFromString(*req.StaffID)
		if idErr != nil {
			return badRequest(ctx, "Invalid staff_id")
		}
		staffID = &id
	}

	cmd, err := commands.NewAssignWorkstationCommand(orderID, order.Stage(req.Stage), staffID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.assignWorkstationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AutoAssignWorkstation handles POST /api/v1/orders/:orderID/auto-assign.
func (s *Server) AutoAssignWorkstation(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req AutoAssignRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAutoAssignWorkstationCommand(orderID, order.Stage(req.Stage))
	if err != nil {
		return fail(ctx, err)
	}

	resp, err := s.autoAssignHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	out := AssignmentResponse{Stage: resp.Stage.String()}
	if resp.StaffID != nil {
		v := resp.StaffID.String()
		out.StaffID = &v
	}

	return ctx.JSON(http.StatusOK, out)
}

// StartProcessing handles POST /api/v1/orders/:orderID/start.
func (s *Server) StartProcessing(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req StartProcessingRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	staffID, err := kernel.UUIDFromString(req.StaffID)
	if err != nil {
		return badRequest(ctx, "Invalid staff_id")
	}

	cmd, err := commands.NewStartProcessingCommand(orderID, staffID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.startProcessingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteProcessing handles POST /api/v1/orders/:orderID/complete.
func (s *Server) CompleteProcessing(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req CompleteProcessingRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor_id")
	}

	cmd, err := commands.NewCompleteProcessingCommand(orderID, actorID)
	if err != nil {
		return fail(ctx, err)
	}

	resp, err := s.completeProcessingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CompletionResponse{EarliestDeliveryAt: resp.EarliestDeliveryAt})
}

// RecordGarmentWork handles POST /api/v1/orders/:orderID/garments/:index/work.
func (s *Server) RecordGarmentWork(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil || index < 0 {
		return badRequest(ctx, "Invalid garment index")
	}

	var req GarmentWorkRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	staffID, err := kernel.UUIDFromString(req.StaffID)
	if err != nil {
		return badRequest(ctx, "Invalid staff_id")
	}

	cmd, err := commands.NewRecordGarmentWorkCommand(
		orderID,
		index,
		order.Stage(req.Stage),
		staffID,
		req.CompletedAt,
		time.Duration(req.DurationSeconds)*time.Second,
	)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.recordGarmentWorkHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClassifyOrder handles POST /api/v1/orders/:orderID/classification.
func (s *Server) ClassifyOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewClassifyOrderCommand(orderID)
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.classifyOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ClassificationResponse{
		Class:             string(result.Class),
		Basis:             string(result.Basis),
		Value:             result.Value,
		EstimatedWeightKg: result.EstimatedWeightKg,
		GarmentCount:      result.GarmentCount,
		Justification:     result.Justification,
	})
}

// OverrideClassification handles PUT /api/v1/orders/:orderID/classification.
func (s *Server) OverrideClassification(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req OverrideClassificationRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor_id")
	}

	cmd, err := commands.NewOverrideClassificationCommand(
		orderID,
		order.SizeClass(req.Target),
		actorID,
		req.Justification,
		req.MayOverride,
	)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.overrideClassHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClassificationPreview handles GET /api/v1/orders/:orderID/classification/preview.
func (s *Server) ClassificationPreview(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewClassifyDeliveryQuery(orderID)
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.classifyPreviewHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ClassificationResponse{
		Class:             string(result.Class),
		Basis:             string(result.Basis),
		Value:             result.Value,
		EstimatedWeightKg: result.EstimatedWeightKg,
		GarmentCount:      result.GarmentCount,
		Justification:     result.Justification,
	})
}

// ValidateSchedule handles GET /api/v1/orders/:orderID/schedule/validate.
func (s *Server) ValidateSchedule(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	proposed, err := time.Parse(time.RFC3339, ctx.QueryParam("proposed"))
	if err != nil {
		return badRequest(ctx, "Invalid proposed time, want RFC 3339")
	}

	query, err := queries.NewValidateDeliveryScheduleQuery(orderID, proposed)
	if err != nil {
		return fail(ctx, err)
	}

	resp, err := s.validateScheduleHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ScheduleValidationResponse{
		Accepted:           resp.Accepted,
		Proposed:           resp.Proposed,
		EarliestDeliveryAt: resp.EarliestDeliveryAt,
	})
}

// CreateWorkstationAssignment handles POST /api/v1/workstation-assignments.
func (s *Server) CreateWorkstationAssignment(ctx echo.Context) error {
	var req NewAssignmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	staffID, err := kernel.UUIDFromString(req.StaffID)
	if err != nil {
		return badRequest(ctx, "Invalid staff_id")
	}
	branchID, err := kernel.UUIDFromString(req.BranchID)
	if err != nil {
		return badRequest(ctx, "Invalid branch_id")
	}
	createdBy, err := kernel.UUIDFromString(req.CreatedBy)
	if err != nil {
		return badRequest(ctx, "Invalid created_by")
	}

	cmd, err := commands.NewCreateWorkstationAssignmentCommand(
		kernel.NewUUID(),
		staffID,
		req.DisplayName,
		order.Stage(req.Stage),
		branchID,
		createdBy,
	)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.createAssignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// DeactivateWorkstationAssignment handles DELETE /api/v1/workstation-assignments.
// The binding is addressed by staff_id, stage, and branch_id query parameters.
func (s *Server) DeactivateWorkstationAssignment(ctx echo.Context) error {
	staffID, err := kernel.UUIDFromString(ctx.QueryParam("staff_id"))
	if err != nil {
		return badRequest(ctx, "Invalid staff_id")
	}
	branchID, err := kernel.UUIDFromString(ctx.QueryParam("branch_id"))
	if err != nil {
		return badRequest(ctx, "Invalid branch_id")
	}

	cmd, err := commands.NewDeactivateWorkstationAssignmentCommand(staffID, order.Stage(ctx.QueryParam("stage")), branchID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.deactivateAssignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// listLimit parses the optional limit query parameter.
func listLimit(ctx echo.Context) int {
	limit, err := strconv.Atoi(ctx.QueryParam("limit"))
	if err != nil {
		return 0
	}
	return limit
}

// writeSummaries writes a list of order summaries as JSON.
func writeSummaries(ctx echo.Context, summaries []queries.OrderSummary) error {
	response := make([]OrderSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		response = append(response, toOrderSummaryResponse(s))
	}
	return ctx.JSON(http.StatusOK, response)
}

// OrdersPendingRouting handles GET /api/v1/branches/:branchID/orders/pending.
func (s *Server) OrdersPendingRouting(ctx echo.Context) error {
	branchID, err := pathUUID(ctx, "branchID")
	if err != nil {
		return badRequest(ctx, "Invalid branch ID")
	}

	query, err := queries.NewGetOrdersPendingRoutingQuery(branchID, listLimit(ctx))
	if err != nil {
		return fail(ctx, err)
	}

	summaries, err := s.pendingRoutingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return writeSummaries(ctx, summaries)
}

// OrdersInTransit handles GET /api/v1/branches/:branchID/orders/in-transit.
func (s *Server) OrdersInTransit(ctx echo.Context) error {
	branchID, err := pathUUID(ctx, "branchID")
	if err != nil {
		return badRequest(ctx, "Invalid branch ID")
	}

	query, err := queries.NewGetOrdersInTransitQuery(branchID, listLimit(ctx))
	if err != nil {
		return fail(ctx, err)
	}

	summaries, err := s.inTransitHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return writeSummaries(ctx, summaries)
}

// OrdersReadyForReturn handles GET /api/v1/branches/:branchID/orders/ready.
func (s *Server) OrdersReadyForReturn(ctx echo.Context) error {
	branchID, err := pathUUID(ctx, "branchID")
	if err != nil {
		return badRequest(ctx, "Invalid branch ID")
	}

	query, err := queries.NewGetOrdersReadyForReturnQuery(branchID, listLimit(ctx))
	if err != nil {
		return fail(ctx, err)
	}

	summaries, err := s.readyForReturnHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return writeSummaries(ctx, summaries)
}

// OrdersByStage handles GET /api/v1/branches/:branchID/stages/:stage/orders.
func (s *Server) OrdersByStage(ctx echo.Context) error {
	branchID, err := pathUUID(ctx, "branchID")
	if err != nil {
		return badRequest(ctx, "Invalid branch ID")
	}

	query, err := queries.NewGetOrdersByStageQuery(branchID, order.Stage(ctx.Param("stage")), listLimit(ctx))
	if err != nil {
		return fail(ctx, err)
	}

	summaries, err := s.byStageHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return writeSummaries(ctx, summaries)
}

// OrdersByStaff handles GET /api/v1/staff/:staffID/orders.
func (s *Server) OrdersByStaff(ctx echo.Context) error {
	staffID, err := pathUUID(ctx, "staffID")
	if err != nil {
		return badRequest(ctx, "Invalid staff ID")
	}

	query, err := queries.NewGetOrdersByStaffQuery(staffID, listLimit(ctx))
	if err != nil {
		return fail(ctx, err)
	}

	summaries, err := s.byStaffHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return writeSummaries(ctx, summaries)
}

// BranchQueueDepth handles GET /api/v1/branches/:branchID/queue-depth.
func (s *Server) BranchQueueDepth(ctx echo.Context) error {
	branchID, err := pathUUID(ctx, "branchID")
	if err != nil {
		return badRequest(ctx, "Invalid branch ID")
	}

	query, err := queries.NewGetBranchQueueDepthQuery(branchID)
	if err != nil {
		return fail(ctx, err)
	}

	depths, err := s.queueDepthHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]QueueDepthResponse, 0, len(depths))
	for _, d := range depths {
		response = append(response, QueueDepthResponse{Stage: d.Stage.String(), Depth: d.Depth})
	}

	return ctx.JSON(http.StatusOK, response)
}

// StaffPerformance handles GET /api/v1/branches/:branchID/staff-performance.
func (s *Server) StaffPerformance(ctx echo.Context) error {
	branchID, err := pathUUID(ctx, "branchID")
	if err != nil {
		return badRequest(ctx, "Invalid branch ID")
	}

	query, err := queries.NewGetStaffPerformanceQuery(branchID)
	if err != nil {
		return fail(ctx, err)
	}

	reports, err := s.staffPerformanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]StaffPerformanceResponse, 0, len(reports))
	for _, r := range reports {
		byStage := make(map[string]int64, len(r.TimeByStage))
		for stage, d := range r.TimeByStage {
			byStage[stage.String()] = int64(d.Seconds())
		}
		response = append(response, StaffPerformanceResponse{
			StaffID:        r.StaffID.String(),
			OrdersHandled:  r.OrdersHandled,
			SecondsByStage: byStage,
			TotalSeconds:   int64(r.TotalWorked.Seconds()),
			OrdersPerHour:  r.OrdersPerHour,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}
