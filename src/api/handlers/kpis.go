package handlers

import (
	"bytes"
	"net/http"
)

// GetKPIs returns per-property KPIs between startDate and endDate. Missing bounds default to the
// earliest and latest dates in the rent roll.
func (h *Handler) GetKPIs(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	query := r.URL.Query()
	h.respond(w, r, h.Controller.GetKPIs(ctx, query.Get("startDate"), query.Get("endDate")), http.StatusOK)
}

func (h *Handler) GetKPIChart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	query := r.URL.Query()
	var page bytes.Buffer
	if err := h.Controller.RenderKPIChart(ctx, query.Get("startDate"), query.Get("endDate"), &page); err != nil {
		h.Logger.Errorf("failed to render kpi chart: %v", err)
		h.HandleErrors(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page.Bytes())
}
