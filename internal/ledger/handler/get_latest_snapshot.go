package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type SnapshotBalance struct {
	Asset  string `json:"asset" example:"usdc"`
	Amount int64  `json:"amount" example:"1200"`
}

type GetLatestSnapshotResponse struct {
	SnapshotID string            `json:"snapshot_id" example:"77b5d9f5-0569-47e3-aee2-f659d59fbd97"`
	TakenAt    time.Time         `json:"taken_at" example:"2025-01-02T15:04:05Z"`
	Balances   []SnapshotBalance `json:"balances"`
}

// GetLatestSnapshot godoc
// @Summary Latest custody snapshot
// @Description Custody balances recorded by the most recent snapshot job run
// @Tags Custody
// @Produce json
// @Success 200 {object} GetLatestSnapshotResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /custody/snapshots/latest [get]
func (h *Handler) GetLatestSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.snapshots.Latest(r.Context())
	if err != nil {
		writeLedgerError(w, err, "ups, couldn't get custody snapshot this time",
			logrus.Fields{"handler": "GetLatestSnapshot"})
		return
	}

	res := GetLatestSnapshotResponse{
		SnapshotID: snapshot.ID.String(),
		TakenAt:    snapshot.TakenAt,
		Balances:   make([]SnapshotBalance, 0, len(snapshot.Balances)),
	}
	for _, b := range snapshot.Balances {
		res.Balances = append(res.Balances, SnapshotBalance{Asset: string(b.Asset), Amount: b.Amount})
	}
	writeJSON(w, http.StatusOK, res)
}
