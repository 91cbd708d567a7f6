package commands

import (
	"context"
	"time"

	"laundryops/internal/core/domain/services"
)

// OverrideClassificationCommandHandler applies a manual size-class override.
// An order that was never classified gets its automatic classification
// recorded first, so the audit trail always shows what the override
// replaced.
type OverrideClassificationCommandHandler struct {
	uowFactory OrderUoWFactory
	classifier services.DeliveryClassifier
}

// NewOverrideClassificationCommandHandler creates a handler for classification overrides.
func NewOverrideClassificationCommandHandler(
	uowFactory OrderUoWFactory, classifier services.DeliveryClassifier,
) OverrideClassificationCommandHandler {
	return OverrideClassificationCommandHandler{
		uowFactory: uowFactory,
		classifier: classifier,
	}
}

// Handle processes the override command.
func (h OverrideClassificationCommandHandler) Handle(ctx context.Context, cmd OverrideClassificationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if o.Classification() == nil {
		result := h.classifier.Classify(o.TotalValue(), o.Garments())
		if err = o.RecordClassification(result.Class); err != nil {
			return err
		}
	}

	if err = o.OverrideClassification(cmd.Target(), cmd.ActorID(), cmd.Justification(), cmd.MayOverride(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
