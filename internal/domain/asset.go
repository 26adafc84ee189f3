package domain

// AssetHandle identifies a fungible asset on the external asset ledger.
type AssetHandle string

// Identity is a participant of the asset ledger: a user, the admin or the custodian itself.
type Identity string

type AssetBalance struct {
	Asset  AssetHandle `json:"asset"`
	Amount int64       `json:"amount"`
}
