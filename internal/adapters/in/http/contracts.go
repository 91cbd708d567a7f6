package http

import (
	"errors"
	"net/http"
	"time"

	"laundryops/internal/core/application/usecases/commands"
	"laundryops/internal/core/application/usecases/queries"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/core/ports"
	"laundryops/internal/pkg/errs"
)

// Error is the JSON error body returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewBranchRequest is the body for branch registration.
type NewBranchRequest struct {
	Name               string  `json:"name"`
	Kind               string  `json:"kind"`
	MainBranchID       *string `json:"main_branch_id,omitempty"`
	SortingWindowHours int     `json:"sorting_window_hours,omitempty"`
}

// NewOrderRequest is the body for order intake.
type NewOrderRequest struct {
	OriginBranchID string   `json:"origin_branch_id"`
	Garments       []string `json:"garments"`
	TotalValue     int64    `json:"total_value"`
}

// OrderCreatedResponse reports the identifier assigned at intake.
type OrderCreatedResponse struct {
	OrderID string `json:"order_id"`
}

// RouteOrderRequest is the body for the routing transition.
type RouteOrderRequest struct {
	ActorID string `json:"actor_id"`
}

// RoutingResponse reports a routing outcome.
type RoutingResponse struct {
	ProcessingBranchID string  `json:"processing_branch_id"`
	RoutingStatus      string  `json:"routing_status"`
	Stage              *string `json:"stage,omitempty"`
	StaffID            *string `json:"staff_id,omitempty"`
}

// ReceiveOrderRequest is the body for transfer receipt.
type ReceiveOrderRequest struct {
	ReceiverID string `json:"receiver_id"`
}

// AssignWorkstationRequest is the body for explicit stage assignment.
type AssignWorkstationRequest struct {
	Stage   string  `json:"stage"`
	StaffID *string `json:"staff_id,omitempty"`
}

// AutoAssignRequest is the body for a load-balanced assignment.
type AutoAssignRequest struct {
	Stage string `json:"stage"`
}

// AssignmentResponse reports the outcome of an assignment. StaffID is
// omitted when no staff member was available.
type AssignmentResponse struct {
	Stage   string  `json:"stage"`
	StaffID *string `json:"staff_id,omitempty"`
}

// StartProcessingRequest is the body for starting work on an order.
type StartProcessingRequest struct {
	StaffID string `json:"staff_id"`
}

// CompleteProcessingRequest is the body for finishing an order.
type CompleteProcessingRequest struct {
	ActorID string `json:"actor_id"`
}

// CompletionResponse reports the sorting outcome of a finished order.
type CompletionResponse struct {
	EarliestDeliveryAt time.Time `json:"earliest_delivery_at"`
}

// GarmentWorkRequest is the body for logging stage work on one garment.
type GarmentWorkRequest struct {
	Stage           string    `json:"stage"`
	StaffID         string    `json:"staff_id"`
	CompletedAt     time.Time `json:"completed_at"`
	DurationSeconds int64     `json:"duration_seconds"`
}

// OverrideClassificationRequest is the body for a manual size-class override.
type OverrideClassificationRequest struct {
	Target        string `json:"target"`
	ActorID       string `json:"actor_id"`
	Justification string `json:"justification"`
	MayOverride   bool   `json:"may_override"`
}

// ClassificationResponse reports a size classification with its basis.
type ClassificationResponse struct {
	Class             string  `json:"class"`
	Basis             string  `json:"basis"`
	Value             int64   `json:"value"`
	EstimatedWeightKg float64 `json:"estimated_weight_kg"`
	GarmentCount      int     `json:"garment_count"`
	Justification     string  `json:"justification"`
}

// NewAssignmentRequest is the body for workstation assignment registration.
type NewAssignmentRequest struct {
	StaffID     string `json:"staff_id"`
	DisplayName string `json:"display_name"`
	Stage       string `json:"stage"`
	BranchID    string `json:"branch_id"`
	CreatedBy   string `json:"created_by"`
}

// OrderSummaryResponse is the JSON shape of one order in list queries.
type OrderSummaryResponse struct {
	ID                 string     `json:"id"`
	OriginBranchID     string     `json:"origin_branch_id"`
	ProcessingBranchID *string    `json:"processing_branch_id,omitempty"`
	Status             string     `json:"status"`
	RoutingStatus      string     `json:"routing_status"`
	Stage              *string    `json:"stage,omitempty"`
	StaffID            *string    `json:"staff_id,omitempty"`
	EarliestDeliveryAt *time.Time `json:"earliest_delivery_at,omitempty"`
	TotalValue         int64      `json:"total_value"`
	Classification     *string    `json:"classification,omitempty"`
	GarmentCount       int        `json:"garment_count"`
}

// QueueDepthResponse reports the open-order count of one stage.
type QueueDepthResponse struct {
	Stage string `json:"stage"`
	Depth int    `json:"depth"`
}

// StaffPerformanceResponse reports one staff member's productivity figures.
type StaffPerformanceResponse struct {
	StaffID        string           `json:"staff_id"`
	OrdersHandled  int              `json:"orders_handled"`
	SecondsByStage map[string]int64 `json:"seconds_by_stage"`
	TotalSeconds   int64            `json:"total_seconds"`
	OrdersPerHour  float64          `json:"orders_per_hour"`
}

// ScheduleValidationResponse reports the structured outcome of a delivery
// schedule check.
type ScheduleValidationResponse struct {
	Accepted           bool      `json:"accepted"`
	Proposed           time.Time `json:"proposed"`
	EarliestDeliveryAt time.Time `json:"earliest_delivery_at"`
}

// statusText maps a customer-facing status to its wire string.
func statusText(s order.Status) string {
	switch s {
	case order.StatusReceived:
		return "received"
	case order.StatusInspection:
		return "inspection"
	case order.StatusQueuedForDelivery:
		return "queued_for_delivery"
	default:
		return "unknown"
	}
}

// toOrderSummaryResponse converts the read model to its JSON shape.
func toOrderSummaryResponse(s queries.OrderSummary) OrderSummaryResponse {
	resp := OrderSummaryResponse{
		ID:                 s.ID.String(),
		OriginBranchID:     s.OriginBranchID.String(),
		Status:             statusText(s.Status),
		RoutingStatus:      s.RoutingStatus.String(),
		EarliestDeliveryAt: s.EarliestDeliveryAt,
		TotalValue:         s.TotalValue,
		GarmentCount:       s.GarmentCount,
	}

	if s.ProcessingBranchID != nil {
		v := s.ProcessingBranchID.String()
		resp.ProcessingBranchID = &v
	}
	if s.Stage != nil {
		v := s.Stage.String()
		resp.Stage = &v
	}
	if s.StaffID != nil {
		v := s.StaffID.String()
		resp.StaffID = &v
	}
	if s.Classification != nil {
		v := string(*s.Classification)
		resp.Classification = &v
	}

	return resp
}

// statusForError picks the HTTP status for an application error. Validation
// failures read as bad requests, lifecycle conflicts and stale writes as
// conflicts, missing capability as forbidden, and unknown objects as 404.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrOverrideNotPermitted):
		return http.StatusForbidden
	case errors.Is(err, ports.ErrStaleOrder),
		errors.Is(err, order.ErrAlreadyRouted),
		errors.Is(err, order.ErrNotRouted),
		errors.Is(err, order.ErrSameClassification),
		errors.Is(err, order.ErrOrderNotClassified),
		errors.Is(err, commands.ErrNoReceivedOrdersFound):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, order.ErrJustificationTooShort):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
