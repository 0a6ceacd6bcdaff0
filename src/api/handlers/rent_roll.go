package handlers

import (
	"context"
	"net/http"
	"time"

	"rentroll/src/schemas"
	"rentroll/src/utils"
)

const (
	requestTimeout = 10 * time.Second
	refreshTimeout = 30 * time.Second
)

func viewFiltersFromQuery(r *http.Request) schemas.ViewFilters {
	query := r.URL.Query()
	return schemas.ViewFilters{
		RentRollFilters: schemas.RentRollFilters{
			SnapshotDate: query.Get("snapshotDate"),
			PropertyName: query.Get("propertyName"),
			Occupancy:    query.Get("occupancy"),
			Search:       query.Get("search"),
		},
		StartDate: query.Get("startDate"),
		EndDate:   query.Get("endDate"),
	}
}

// GetRentRoll returns every record currently held, in load order.
func (h *Handler) GetRentRoll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	h.respond(w, r, h.Controller.GetRentRoll(ctx), http.StatusOK)
}

func (h *Handler) GetView(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	h.respond(w, r, h.Controller.GetView(ctx, viewFiltersFromQuery(r)), http.StatusOK)
}

func (h *Handler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	filters := viewFiltersFromQuery(r).RentRollFilters
	h.respond(w, r, h.Controller.GetSnapshot(ctx, filters), http.StatusOK)
}

func (h *Handler) GetUnits(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	h.respond(w, r, h.Controller.GetUnits(ctx, r.URL.Query().Get("snapshotDate")), http.StatusOK)
}

func (h *Handler) GetProperties(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	h.respond(w, r, h.Controller.GetProperties(ctx), http.StatusOK)
}

// Refresh reloads the rent roll from its source. In-memory move-ins and move-outs are lost.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), refreshTimeout)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	res, err := h.Controller.Refresh(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, res, http.StatusOK)
}
