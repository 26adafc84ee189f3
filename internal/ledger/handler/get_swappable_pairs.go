package handler

import (
	"net/http"
)

type GetSwappablePairsResponse struct {
	From  []string `json:"from" example:"usdc,eurc"`
	To    []string `json:"to" example:"eurc,usdc"`
	Rates []int64  `json:"rates" example:"92,108"`
}

// GetSwappablePairs godoc
// @Summary List swappable pairs
// @Description Every configured direction in the order it was first configured, as three index-aligned columns
// @Tags Rates
// @Produce json
// @Success 200 {object} GetSwappablePairsResponse
// @Router /rates/pairs [get]
func (h *Handler) GetSwappablePairs(w http.ResponseWriter, _ *http.Request) {
	pairs := h.service.SwappablePairs()

	res := GetSwappablePairsResponse{
		From:  make([]string, 0, pairs.Len()),
		To:    make([]string, 0, pairs.Len()),
		Rates: make([]int64, 0, pairs.Len()),
	}
	for i := range pairs.Len() {
		res.From = append(res.From, string(pairs.From[i]))
		res.To = append(res.To, string(pairs.To[i]))
		res.Rates = append(res.Rates, pairs.Rates[i])
	}
	writeJSON(w, http.StatusOK, res)
}
