package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized              = errors.New("caller is not the admin")
	ErrInvalidAmount             = errors.New("amount must be greater than 0")
	ErrInvalidRate               = errors.New("invalid swap rate")
	ErrInsufficientCallerFunds   = errors.New("caller does not have enough of the asset")
	ErrInsufficientContractFunds = errors.New("custody does not hold enough of the asset")
	ErrUnsupportedPair           = errors.New("swapping between these assets is not supported")
	ErrInsufficientLiquidity     = errors.New("custody does not hold enough of the output asset")
	ErrSameAsset                 = errors.New("assets of a pair must be different")
	ErrOperationNotFound         = errors.New("operation not found")
	ErrSnapshotNotFound          = errors.New("custody snapshot not found")
	ErrUnsupportedAsset          = errors.New("asset not supported")
	ErrIdempotencyKeyReused      = errors.New("idempotency key was already used for a different swap")
	ErrInvalidForwardRate        = fmt.Errorf("%w: rate from the first to the second asset must be greater than 0", ErrInvalidRate)
	ErrInvalidReverseRate        = fmt.Errorf("%w: rate from the second to the first asset must be greater than 0", ErrInvalidRate)
)

// Asset ledger errors, returned by AssetTransfer implementations.
var (
	ErrInsufficientBalance   = errors.New("holder balance is too low")
	ErrInsufficientAllowance = errors.New("holder allowance for the custodian is too low")
	ErrUnknownAsset          = errors.New("asset is not registered")
)
