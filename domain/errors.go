package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	ErrInvalidCollectionFamily = errors.New("invalid collection family")
	ErrInvalidWallet           = errors.New("invalid wallet address")

	// ErrTxnNotFound is returned when a transaction cannot be fetched after the
	// finality wait is exhausted
	ErrTxnNotFound = errors.New("transaction not found")
	// ErrMetadataUnavailable is returned when a token's on-chain pointer or the
	// off-chain json behind it cannot be fetched
	ErrMetadataUnavailable = errors.New("token metadata unavailable")
	// ErrAssetNotFound means a clean trait has no layer asset on disk. This is a
	// data-integrity bug, never user error, and aborts the whole wash.
	ErrAssetNotFound = errors.New("layer asset not found")
	// ErrWashInProgress rejects a second wash request for a mint that already
	// has one in flight
	ErrWashInProgress = errors.New("wash already in progress for mint")
)
