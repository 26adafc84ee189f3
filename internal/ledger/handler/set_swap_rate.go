package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

type SetSwapRateRequest struct {
	X        string `json:"x" example:"usdc"`
	Y        string `json:"y" example:"eurc"`
	RateXToY int64  `json:"rate_x_to_y" example:"92"`
	RateYToX int64  `json:"rate_y_to_x" example:"108"`
}

// SetSwapRate godoc
// @Summary Configure a swap pair
// @Description Set both directions of a pair at once. Rates are scaled by 100, so 100 means 1:1.
// @Tags Rates
// @Accept json
// @Param X-Caller-ID header string true "Caller identity"
// @Param request body SetSwapRateRequest true "Pair and rates"
// @Success 204
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /rates [put]
func (h *Handler) SetSwapRate(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	var req SetSwapRateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	x, y := assetParam(req.X), assetParam(req.Y)
	if err := h.validator.ValidatePair(x, y); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.SetSwapRate(r.Context(), caller, x, y, req.RateXToY, req.RateYToX); err != nil {
		writeLedgerError(w, err, "ups, swap rate wasn't set this time",
			logrus.Fields{"handler": "SetSwapRate", "caller": caller, "x": x, "y": y})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
