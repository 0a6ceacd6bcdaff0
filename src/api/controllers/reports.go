package controllers

import (
	"context"
	"io"

	"github.com/xuri/excelize/v2"

	"rentroll/src/schemas"
)

type ReportsControllerI interface {
	GenerateXLSX(ctx context.Context, filters schemas.ViewFilters) (*excelize.File, error)
	RenderKPIChart(ctx context.Context, startDate, endDate string, w io.Writer) error
}

func (c *Controller) GenerateXLSX(ctx context.Context, filters schemas.ViewFilters) (*excelize.File, error) {
	return c.ReportService.GenerateXLSXReport(ctx, c.GetView(ctx, filters))
}

func (c *Controller) RenderKPIChart(ctx context.Context, startDate, endDate string, w io.Writer) error {
	return c.ReportService.RenderOccupancyChart(ctx, c.GetKPIs(ctx, startDate, endDate), w)
}
