package handler

import (
	"net/http"

	"stableswap/internal/ledger"

	"github.com/go-chi/chi/v5"
)

type GetSwapRateResponse struct {
	From      string `json:"from" example:"usdc"`
	To        string `json:"to" example:"eurc"`
	Swappable bool   `json:"swappable" example:"true"`
	Rate      int64  `json:"rate" example:"92"`
	Price     string `json:"price" example:"0.92"`
}

// GetSwapRate godoc
// @Summary Get swap rate
// @Description Whether a direction is configured and its rate; an unconfigured direction has rate 0
// @Tags Rates
// @Produce json
// @Param from path string true "Input asset"
// @Param to path string true "Output asset"
// @Success 200 {object} GetSwapRateResponse
// @Failure 400 {object} errorResponse
// @Router /rates/{from}/{to} [get]
func (h *Handler) GetSwapRate(w http.ResponseWriter, r *http.Request) {
	from := assetParam(chi.URLParam(r, "from"))
	to := assetParam(chi.URLParam(r, "to"))

	if err := h.validator.ValidatePair(from, to); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rate := h.service.SwapRate(from, to)
	writeJSON(w, http.StatusOK, GetSwapRateResponse{
		From:      string(from),
		To:        string(to),
		Swappable: h.service.Swappable(from, to),
		Rate:      rate,
		Price:     ledger.RatePrice(rate),
	})
}
