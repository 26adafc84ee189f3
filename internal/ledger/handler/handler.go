package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"stableswap/internal/domain"
	"stableswap/internal/ledger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CallerHeader carries the identity authenticated by the gateway in front of the service.
const CallerHeader = "X-Caller-ID"

const IdempotencyKeyHeader = "Idempotency-Key"

type LedgerService interface {
	Deposit(ctx context.Context, caller domain.Identity, asset domain.AssetHandle, amount int64) (domain.Receipt, error)
	Withdraw(ctx context.Context, caller domain.Identity, asset domain.AssetHandle, amount int64) (domain.Receipt, error)
	CustodyBalance(ctx context.Context, asset domain.AssetHandle) (int64, error)
	SetSwapRate(ctx context.Context, caller domain.Identity, x, y domain.AssetHandle, rateXToY, rateYToX int64) error
	Swappable(from, to domain.AssetHandle) bool
	SwapRate(from, to domain.AssetHandle) int64
	SwappablePairs() domain.SwappablePairs
	Swap(ctx context.Context, req ledger.SwapRequest) (domain.Receipt, error)
	Operation(ctx context.Context, id uuid.UUID) (domain.Receipt, error)
}

// AssetValidator rejects malformed input before it reaches the ledger. Admin
// and swap endpoints check the form only; membership is decided by the ledger
// after its own gate.
type AssetValidator interface {
	ValidateHandle(asset domain.AssetHandle) error
	ValidatePair(from, to domain.AssetHandle) error
	ValidateAsset(asset domain.AssetHandle) error
	SupportedAssets() []domain.AssetHandle
}

type SnapshotReader interface {
	Latest(ctx context.Context) (domain.CustodySnapshot, error)
}

type Handler struct {
	service   LedgerService
	validator AssetValidator
	snapshots SnapshotReader
}

func NewLedgerHandler(service LedgerService, validator AssetValidator, snapshots SnapshotReader) *Handler {
	return &Handler{service: service, validator: validator, snapshots: snapshots}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

func callerIdentity(w http.ResponseWriter, r *http.Request) (domain.Identity, bool) {
	caller := strings.TrimSpace(r.Header.Get(CallerHeader))
	if caller == "" {
		writeError(w, http.StatusUnauthorized, "caller identity is required")
		return "", false
	}
	return domain.Identity(caller), true
}

func assetParam(raw string) domain.AssetHandle {
	return domain.AssetHandle(strings.TrimSpace(raw))
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1024)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// ledgerErrors maps rejections of the ledger to a status. The sentinel text is
// returned to the client, never the wrapped adapter detail.
var ledgerErrors = []struct {
	err    error
	status int
}{
	{domain.ErrUnauthorized, http.StatusForbidden},
	{domain.ErrInvalidAmount, http.StatusBadRequest},
	{domain.ErrInvalidForwardRate, http.StatusBadRequest},
	{domain.ErrInvalidReverseRate, http.StatusBadRequest},
	{domain.ErrInvalidRate, http.StatusBadRequest},
	{domain.ErrSameAsset, http.StatusBadRequest},
	{domain.ErrUnsupportedAsset, http.StatusBadRequest},
	{ledger.ErrAssetRequired, http.StatusBadRequest},
	{ledger.ErrAssetMalformed, http.StatusBadRequest},
	{domain.ErrUnsupportedPair, http.StatusUnprocessableEntity},
	{domain.ErrIdempotencyKeyReused, http.StatusUnprocessableEntity},
	{domain.ErrInsufficientCallerFunds, http.StatusConflict},
	{domain.ErrInsufficientContractFunds, http.StatusConflict},
	{domain.ErrInsufficientLiquidity, http.StatusConflict},
	{domain.ErrInsufficientAllowance, http.StatusConflict},
	{domain.ErrInsufficientBalance, http.StatusConflict},
	{domain.ErrUnknownAsset, http.StatusNotFound},
	{domain.ErrOperationNotFound, http.StatusNotFound},
	{domain.ErrSnapshotNotFound, http.StatusNotFound},
}

func writeLedgerError(w http.ResponseWriter, err error, msg string, fields logrus.Fields) {
	for _, known := range ledgerErrors {
		if errors.Is(err, known.err) {
			writeError(w, known.status, known.err.Error())
			return
		}
	}
	logrus.WithError(err).WithFields(fields).Error(msg)
	writeError(w, http.StatusInternalServerError, msg)
}
