package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type GetCustodyResponse struct {
	Asset   string `json:"asset" example:"usdc"`
	Balance int64  `json:"balance" example:"1200"`
}

// GetCustody godoc
// @Summary Custody balance
// @Description Live balance of an asset held in custody
// @Tags Custody
// @Produce json
// @Param asset path string true "Asset handle"
// @Success 200 {object} GetCustodyResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /custody/{asset} [get]
func (h *Handler) GetCustody(w http.ResponseWriter, r *http.Request) {
	asset := assetParam(chi.URLParam(r, "asset"))
	if err := h.validator.ValidateAsset(asset); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	balance, err := h.service.CustodyBalance(r.Context(), asset)
	if err != nil {
		writeLedgerError(w, err, "ups, couldn't get custody balance this time",
			logrus.Fields{"handler": "GetCustody", "asset": asset})
		return
	}
	writeJSON(w, http.StatusOK, GetCustodyResponse{Asset: string(asset), Balance: balance})
}
