package services

import (
	"context"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/xuri/excelize/v2"

	"rentroll/src/schemas"
)

const (
	rentRollSheet = "Rent Roll"
	kpiSheet      = "KPIs"
)

type ReportServiceI interface {
	GenerateXLSXReport(ctx context.Context, view schemas.ViewModel) (*excelize.File, error)
	RenderOccupancyChart(ctx context.Context, kpis schemas.KPIResponse, w io.Writer) error
}

type ReportService struct{}

func NewReportService() *ReportService {
	return &ReportService{}
}

// GenerateXLSXReport writes the filtered snapshot and the KPIs of a view to a workbook with
// one sheet each.
func (rs *ReportService) GenerateXLSXReport(ctx context.Context, view schemas.ViewModel) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", rentRollSheet); err != nil {
		return nil, err
	}

	rentRollRows := [][]interface{}{{"Date", "Property", "Unit", "Resident", "Monthly Rent", "Occupancy"}}
	for _, record := range view.Rows {
		var rent interface{} = record.MonthlyRent
		if value, ok := record.Rent(); ok {
			rent = value
		}
		status := "Vacant"
		if record.Occupied() {
			status = "Occupied"
		}
		rentRollRows = append(rentRollRows, []interface{}{
			record.Date, record.PropertyName, record.UnitNumber, record.ResidentName, rent, status,
		})
	}
	if err := rs.writeSheet(f, rentRollSheet, rentRollRows); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(kpiSheet); err != nil {
		return nil, err
	}
	title := fmt.Sprintf("%s to %s (%d days)", view.StartDate, view.EndDate, view.RangeDays)
	kpiRows := [][]interface{}{{"Property", "Avg Rent", "Occupancy", "Move-ins", "Move-outs", "Units"}}
	for _, kpi := range view.KPIs {
		kpiRows = append(kpiRows, []interface{}{
			kpi.Name, kpi.AvgRent, kpi.Occupancy, kpi.MoveIns, kpi.MoveOuts, kpi.NumUnits,
		})
	}
	kpiRows = append(kpiRows, []interface{}{}, []interface{}{title})
	if err := rs.writeSheet(f, kpiSheet, kpiRows); err != nil {
		return nil, err
	}
	if err := rs.applyNumberFormats(f, len(view.Rows), len(view.KPIs)); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

func (rs *ReportService) writeSheet(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		row := row
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6E6E6"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return err
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastHeader, headerStyle); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", "F", 18)
}

func (rs *ReportService) applyNumberFormats(f *excelize.File, rentRows, kpiRows int) error {
	currency := "$#,##0"
	currencyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &currency})
	if err != nil {
		return err
	}
	percentStyle, err := f.NewStyle(&excelize.Style{NumFmt: 10})
	if err != nil {
		return err
	}
	if rentRows > 0 {
		if err := f.SetCellStyle(rentRollSheet, "E2", fmt.Sprintf("E%d", rentRows+1), currencyStyle); err != nil {
			return err
		}
	}
	if kpiRows > 0 {
		if err := f.SetCellStyle(kpiSheet, "B2", fmt.Sprintf("B%d", kpiRows+1), currencyStyle); err != nil {
			return err
		}
		if err := f.SetCellStyle(kpiSheet, "C2", fmt.Sprintf("C%d", kpiRows+1), percentStyle); err != nil {
			return err
		}
	}
	return nil
}

// RenderOccupancyChart renders an HTML bar chart of occupancy and average rent per property.
func (rs *ReportService) RenderOccupancyChart(ctx context.Context, kpis schemas.KPIResponse, w io.Writer) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Portfolio KPIs",
			Subtitle: fmt.Sprintf("%s to %s (%d days)", kpis.StartDate, kpis.EndDate, kpis.RangeDays),
		}),
	)

	names := make([]string, 0, len(kpis.KPIs))
	occupancy := make([]opts.BarData, 0, len(kpis.KPIs))
	avgRent := make([]opts.BarData, 0, len(kpis.KPIs))
	for _, kpi := range kpis.KPIs {
		names = append(names, kpi.Name)
		occupancy = append(occupancy, opts.BarData{Value: kpi.Occupancy * 100})
		avgRent = append(avgRent, opts.BarData{Value: kpi.AvgRent})
	}
	bar.SetXAxis(names).
		AddSeries("Occupancy %", occupancy).
		AddSeries("Avg Rent", avgRent)

	return bar.Render(w)
}
