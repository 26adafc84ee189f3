package handler

import (
	"net/http"
)

type GetSupportedAssetsResponse struct {
	Assets []string `json:"assets" example:"eurc,usdc"`
}

// GetSupportedAssets godoc
// @Summary List supported assets
// @Description Asset handles registered with the asset ledger
// @Tags Assets
// @Produce json
// @Success 200 {object} GetSupportedAssetsResponse
// @Router /assets [get]
func (h *Handler) GetSupportedAssets(w http.ResponseWriter, _ *http.Request) {
	supported := h.validator.SupportedAssets()
	res := GetSupportedAssetsResponse{Assets: make([]string, 0, len(supported))}
	for _, asset := range supported {
		res.Assets = append(res.Assets, string(asset))
	}
	writeJSON(w, http.StatusOK, res)
}
