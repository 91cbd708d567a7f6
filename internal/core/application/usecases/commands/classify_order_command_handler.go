package commands

import (
	"context"

	"laundryops/internal/core/domain/services"
)

// ClassifyOrderCommandHandler computes and stores the automatic size class
// of an order. The first recorded classification sticks: re-running the
// command on an already classified order changes nothing, so manual
// overrides are never clobbered by late automatic runs.
type ClassifyOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	classifier services.DeliveryClassifier
}

// NewClassifyOrderCommandHandler creates a handler using the given classifier.
func NewClassifyOrderCommandHandler(uowFactory OrderUoWFactory, classifier services.DeliveryClassifier) ClassifyOrderCommandHandler {
	return ClassifyOrderCommandHandler{
		uowFactory: uowFactory,
		classifier: classifier,
	}
}

// Handle processes the classification command and reports the result.
func (h ClassifyOrderCommandHandler) Handle(
	ctx context.Context, cmd ClassifyOrderCommand,
) (services.ClassificationResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.ClassificationResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.ClassificationResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return services.ClassificationResult{}, err
	}

	result := h.classifier.Classify(o.TotalValue(), o.Garments())

	if err = o.RecordClassification(result.Class); err != nil {
		return services.ClassificationResult{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return services.ClassificationResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.ClassificationResult{}, err
	}

	return result, nil
}
