package controllers

import (
	"context"

	"rentroll/src/models"
	"rentroll/src/schemas"
	"rentroll/src/services"
	"rentroll/src/utils"
)

type TransactionsControllerI interface {
	MoveIn(ctx context.Context, input schemas.MoveInInput) schemas.TransactionResponse
	MoveOut(ctx context.Context, input schemas.MoveOutInput) schemas.TransactionResponse
}

// MoveIn applies a move-in to the in-memory rent roll. Incomplete input is ignored.
func (c *Controller) MoveIn(ctx context.Context, input schemas.MoveInInput) schemas.TransactionResponse {
	applied := c.Store.Apply(func(records []models.RentRollRecord) ([]models.RentRollRecord, bool) {
		return services.MoveIn(records, input)
	})
	return c.transactionResult(ctx, "move_in", applied)
}

// MoveOut applies a move-out to the in-memory rent roll. Incomplete input or a unit that was
// never observed is ignored.
func (c *Controller) MoveOut(ctx context.Context, input schemas.MoveOutInput) schemas.TransactionResponse {
	applied := c.Store.Apply(func(records []models.RentRollRecord) ([]models.RentRollRecord, bool) {
		return services.MoveOut(records, input)
	})
	return c.transactionResult(ctx, "move_out", applied)
}

func (c *Controller) transactionResult(ctx context.Context, operation string, applied bool) schemas.TransactionResponse {
	count := c.Store.Count()
	if c.Metrics != nil {
		c.Metrics.ObserveMutation(operation, applied, count)
	}
	utils.LoggerFromContext(ctx).WithField("applied", applied).Debugf("%s processed", operation)
	return schemas.TransactionResponse{Applied: applied, Records: count}
}
