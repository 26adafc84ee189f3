package handler

import (
	"net/http"
	"strings"

	"stableswap/internal/ledger"

	"github.com/sirupsen/logrus"
)

type SwapRequest struct {
	From   string `json:"from" example:"usdc"`
	To     string `json:"to" example:"eurc"`
	Amount int64  `json:"amount" example:"100"`
}

// Swap godoc
// @Summary Swap assets
// @Description Exchange an amount of one asset for another at the configured rate. The caller must have approved the custodian for the input amount.
// @Tags Swaps
// @Accept json
// @Produce json
// @Param X-Caller-ID header string true "Caller identity"
// @Param Idempotency-Key header string false "Replays the first receipt for a repeated key; reusing it for a different swap is rejected"
// @Param request body SwapRequest true "Swap"
// @Success 201 {object} domain.Receipt
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /swaps [post]
func (h *Handler) Swap(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	var req SwapRequest
	if !decodeBody(w, r, &req) {
		return
	}

	from, to := assetParam(req.From), assetParam(req.To)
	if err := h.validator.ValidatePair(from, to); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	key := strings.TrimSpace(r.Header.Get(IdempotencyKeyHeader))
	if len(key) > 128 {
		writeError(w, http.StatusBadRequest, "idempotency key is too long")
		return
	}

	receipt, err := h.service.Swap(r.Context(), ledger.SwapRequest{
		Caller:         caller,
		From:           from,
		To:             to,
		Amount:         req.Amount,
		IdempotencyKey: key,
	})
	if err != nil {
		writeLedgerError(w, err, "ups, swap failed this time",
			logrus.Fields{"handler": "Swap", "caller": caller, "from": from, "to": to, "amount": req.Amount})
		return
	}
	writeJSON(w, http.StatusCreated, receipt)
}
