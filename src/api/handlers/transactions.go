package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"rentroll/src/schemas"
	"rentroll/src/utils"
)

var validate = validator.New()

// MoveIn records a resident moving into a unit. A body that is not JSON is rejected; a body
// missing any field is accepted and ignored.
func (h *Handler) MoveIn(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	var req schemas.MoveInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, utils.BadRequest("Invalid request body"))
		return
	}
	if err := validate.Struct(req); err != nil {
		h.Logger.WithError(err).Debug("ignoring incomplete move-in")
		h.respond(w, r, schemas.TransactionResponse{Applied: false, Records: h.Controller.CountRecords(ctx)}, http.StatusOK)
		return
	}

	h.respond(w, r, h.Controller.MoveIn(ctx, req.ToInput()), http.StatusOK)
}

func (h *Handler) MoveOut(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	var req schemas.MoveOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, utils.BadRequest("Invalid request body"))
		return
	}
	if err := validate.Struct(req); err != nil {
		h.Logger.WithError(err).Debug("ignoring incomplete move-out")
		h.respond(w, r, schemas.TransactionResponse{Applied: false, Records: h.Controller.CountRecords(ctx)}, http.StatusOK)
		return
	}

	h.respond(w, r, h.Controller.MoveOut(ctx, req.ToInput()), http.StatusOK)
}
