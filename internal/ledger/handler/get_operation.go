package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// GetOperation godoc
// @Summary Get operation receipt
// @Description Receipt of a past deposit, withdrawal or swap
// @Tags Operations
// @Produce json
// @Param id path string true "Operation ID"
// @Success 200 {object} domain.Receipt
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /operations/{id} [get]
func (h *Handler) GetOperation(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "id")
	id, err := uuid.Parse(rawID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid operation ID format")
		return
	}

	receipt, err := h.service.Operation(r.Context(), id)
	if err != nil {
		writeLedgerError(w, err, "ups, couldn't get operation this time",
			logrus.Fields{"handler": "GetOperation", "operation_id": id})
		return
	}
	writeJSON(w, http.StatusOK, receipt)
}
