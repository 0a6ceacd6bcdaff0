package controllers

import (
	"rentroll/src/datasource"
	"rentroll/src/metrics"
	"rentroll/src/repositories"
	"rentroll/src/services"
)

type IController interface {
	RentRollControllerI
	TransactionsControllerI
	ReportsControllerI
}

type Controller struct {
	Store         repositories.RentRollRepository
	Source        datasource.Source
	ReportService services.ReportServiceI
	Metrics       *metrics.Metrics
}

func NewController(store repositories.RentRollRepository, source datasource.Source, m *metrics.Metrics) *Controller {
	return &Controller{
		Store:         store,
		Source:        source,
		ReportService: services.NewReportService(),
		Metrics:       m,
	}
}
