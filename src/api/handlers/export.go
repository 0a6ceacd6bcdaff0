package handlers

import (
	"fmt"
	"net/http"
)

// ExportXLSX writes the filtered rent roll and its KPIs as an Excel workbook.
func (h *Handler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	filters := viewFiltersFromQuery(r)
	xlsxFile, err := h.Controller.GenerateXLSX(ctx, filters)
	if err != nil {
		h.Logger.Errorf("failed to generate rent roll workbook: %v", err)
		h.HandleErrors(w, err)
		return
	}
	defer xlsxFile.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=rent_roll_%s.xlsx", exportSuffix(filters.SnapshotDate)))

	if err := xlsxFile.Write(w); err != nil {
		h.Logger.Errorf("failed to write rent roll workbook: %v", err)
	}
}

func exportSuffix(snapshotDate string) string {
	if snapshotDate == "" {
		return "latest"
	}
	return snapshotDate
}
