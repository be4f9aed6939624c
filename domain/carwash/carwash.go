package carwash

import (
	"image"

	"github.com/bitwhips/washapi/base/ctx"
	"github.com/bitwhips/washapi/domain"
	"github.com/bitwhips/washapi/domain/nftmeta"
)

// WashRequest is the external entry point payload: proof of payment plus the
// token to wash.
type WashRequest struct {
	Signature  string                  `json:"signature" validate:"required"`
	Mint       string                  `json:"mint" validate:"required"`
	FromWallet string                  `json:"fromWallet" validate:"required"`
	Family     domain.CollectionFamily `json:"type" validate:"required"`
}

// WashStatus is the terminal outcome of a wash workflow.
type WashStatus int

const (
	// StatusWashed means the full workflow completed and the on-chain pointer
	// now references the clean metadata.
	StatusWashed WashStatus = iota
	// StatusRejected is the expected-and-benign refusal: invalid payment,
	// wrong payer, already washed, or a concurrent wash holding the mint.
	// Never alerted, never retried.
	StatusRejected
	// StatusFailed means an error interrupted the workflow. If payment had
	// already been validated the operator was alerted, because a refund or a
	// manual completion is now owed.
	StatusFailed
)

// WashResult carries the outcome and, on success, the republished metadata.
type WashResult struct {
	Status   WashStatus
	Ticket   int
	ImageUri string
	JsonUri  string
	Metadata *nftmeta.Metadata
}

// UseCase is the wash orchestrator.
type UseCase interface {
	Wash(c ctx.Ctx, req *WashRequest) (*WashResult, error)
	WashedCount(c ctx.Ctx) (int, error)
	WalletInventory(c ctx.Ctx, wallet string) ([]*nftmeta.Metadata, error)
}

// CounterRepo is the persisted wash counter. Increment must be atomic at the
// storage layer: two concurrent washes can never observe the same base value.
type CounterRepo interface {
	Increment(c ctx.Ctx) (int, error)
	Get(c ctx.Ctx) (int, error)
}

// MetadataCacheRepo is the per-family last-known-metadata cache keyed by mint.
type MetadataCacheRepo interface {
	Get(c ctx.Ctx, family domain.CollectionFamily, mint string) (*nftmeta.Metadata, error)
	FindByMints(c ctx.Ctx, family domain.CollectionFamily, mints []string) ([]*nftmeta.Metadata, error)
	Upsert(c ctx.Ctx, family domain.CollectionFamily, mint string, metadata *nftmeta.Metadata) error
}

// LayerRepo locates and decodes the visual layer assets of clean traits.
// A miss is domain.ErrAssetNotFound and aborts the wash.
type LayerRepo interface {
	Layer(c ctx.Ctx, family domain.CollectionFamily, category, value string) (image.Image, error)
	WashedStamp(c ctx.Ctx, family domain.CollectionFamily) (image.Image, error)
}

// LockRepo provides per-mint mutual exclusion. Acquire returns a lease token
// to pass back to Release; it returns domain.ErrWashInProgress while another
// wash holds the mint.
type LockRepo interface {
	Acquire(c ctx.Ctx, mint string) (string, error)
	Release(c ctx.Ctx, mint, token string) error
}

// OffchainResolver follows a metadata pointer to the off-chain json.
type OffchainResolver interface {
	Fetch(c ctx.Ctx, uri string) (*nftmeta.Metadata, error)
}
