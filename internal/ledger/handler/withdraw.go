package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// Withdraw godoc
// @Summary Withdraw from custody
// @Description Push an amount of an asset from custody to the admin
// @Tags Custody
// @Accept json
// @Produce json
// @Param X-Caller-ID header string true "Caller identity"
// @Param request body CustodyTransferRequest true "Asset and amount"
// @Success 201 {object} domain.Receipt
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /custody/withdrawals [post]
func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	var req CustodyTransferRequest
	if !decodeBody(w, r, &req) {
		return
	}

	asset := assetParam(req.Asset)
	if err := h.validator.ValidateHandle(asset); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	receipt, err := h.service.Withdraw(r.Context(), caller, asset, req.Amount)
	if err != nil {
		writeLedgerError(w, err, "ups, withdrawal failed this time",
			logrus.Fields{"handler": "Withdraw", "caller": caller, "asset": asset, "amount": req.Amount})
		return
	}
	writeJSON(w, http.StatusCreated, receipt)
}
