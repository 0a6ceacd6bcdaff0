package controllers

import (
	"context"
	"fmt"

	"rentroll/src/models"
	"rentroll/src/schemas"
	"rentroll/src/services"
	"rentroll/src/utils"
)

type RentRollControllerI interface {
	Refresh(ctx context.Context) (*schemas.RefreshResponse, error)
	GetRentRoll(ctx context.Context) []models.RentRollRecord
	CountRecords(ctx context.Context) int
	GetView(ctx context.Context, filters schemas.ViewFilters) schemas.ViewModel
	GetSnapshot(ctx context.Context, filters schemas.RentRollFilters) []models.RentRollRecord
	GetUnits(ctx context.Context, snapshotDate string) schemas.UnitListings
	GetProperties(ctx context.Context) []string
	GetKPIs(ctx context.Context, startDate, endDate string) schemas.KPIResponse
}

type invalidator interface {
	Invalidate(ctx context.Context) error
}

// Refresh reloads the rent roll from the data source, replacing every in-memory mutation.
// On failure the current records stay in place and the error is kept for the view.
func (c *Controller) Refresh(ctx context.Context) (*schemas.RefreshResponse, error) {
	logger := utils.LoggerFromContext(ctx)

	if cached, ok := c.Source.(invalidator); ok {
		if err := cached.Invalidate(ctx); err != nil {
			logger.Warnf("failed to invalidate cached rent roll: %v", err)
		}
	}

	records, err := c.Source.Load(ctx)
	if err != nil {
		err = fmt.Errorf("failed to fetch rent roll from %s: %w", c.Source.Name(), err)
		logger.Errorf("%v", err)
		c.Store.SetLoadError(err)
		c.observeRefresh(err)
		return nil, utils.BadGateway(err.Error())
	}

	c.Store.Replace(records)
	c.observeRefresh(nil)
	logger.Infof("loaded %d rent roll records from %s", len(records), c.Source.Name())
	return &schemas.RefreshResponse{Source: c.Source.Name(), Records: len(records)}, nil
}

func (c *Controller) observeRefresh(err error) {
	if c.Metrics != nil {
		c.Metrics.ObserveRefresh(err, c.Store.Count())
	}
}

func (c *Controller) GetRentRoll(ctx context.Context) []models.RentRollRecord {
	return c.Store.All()
}

func (c *Controller) CountRecords(ctx context.Context) int {
	return c.Store.Count()
}

func (c *Controller) GetView(ctx context.Context, filters schemas.ViewFilters) schemas.ViewModel {
	view := services.DeriveView(c.Store.All(), filters)
	if err := c.Store.LoadError(); err != nil {
		view.Error = err.Error()
	}
	return view
}

func (c *Controller) GetSnapshot(ctx context.Context, filters schemas.RentRollFilters) []models.RentRollRecord {
	return services.FilterRentRoll(c.Store.All(), filters)
}

func (c *Controller) GetUnits(ctx context.Context, snapshotDate string) schemas.UnitListings {
	return services.UnitListings(c.Store.All(), snapshotDate)
}

func (c *Controller) GetProperties(ctx context.Context) []string {
	return services.Properties(c.Store.All())
}

func (c *Controller) GetKPIs(ctx context.Context, startDate, endDate string) schemas.KPIResponse {
	records := c.Store.All()
	filters := services.WithDefaults(records, schemas.ViewFilters{StartDate: startDate, EndDate: endDate})
	return schemas.KPIResponse{
		StartDate: filters.StartDate,
		EndDate:   filters.EndDate,
		RangeDays: utils.RangeDays(filters.StartDate, filters.EndDate),
		KPIs:      services.DeriveKPIs(records, filters.StartDate, filters.EndDate),
	}
}
