package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

type CustodyTransferRequest struct {
	Asset  string `json:"asset" example:"usdc"`
	Amount int64  `json:"amount" example:"300"`
}

// Deposit godoc
// @Summary Deposit into custody
// @Description Pull an amount of an asset from the admin into custody. The admin must have approved the custodian beforehand.
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
// @Router /custody/deposits [post]
func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
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

	receipt, err := h.service.Deposit(r.Context(), caller, asset, req.Amount)
	if err != nil {
		writeLedgerError(w, err, "ups, deposit failed this time",
			logrus.Fields{"handler": "Deposit", "caller": caller, "asset": asset, "amount": req.Amount})
		return
	}
	writeJSON(w, http.StatusCreated, receipt)
}
