package usecase

import (
	"encoding/json"
	"fmt"
	"image"
	"time"

	"github.com/shopspring/decimal"
	"github.com/viney-shih/goroutines"

	"github.com/bitwhips/washapi/base/backoff"
	bCtx "github.com/bitwhips/washapi/base/ctx"
	"github.com/bitwhips/washapi/base/log"
	"github.com/bitwhips/washapi/base/metrics"
	"github.com/bitwhips/washapi/domain"
	"github.com/bitwhips/washapi/domain/carwash"
	"github.com/bitwhips/washapi/domain/nftmeta"
	"github.com/bitwhips/washapi/domain/solana"
	"github.com/bitwhips/washapi/domain/traits"
)

const (
	contentTypePng  = "image/png"
	contentTypeJson = "application/json"
)

type Config struct {
	Counter  carwash.CounterRepo
	Metadata carwash.MetadataCacheRepo
	Layers   carwash.LayerRepo
	Locks    carwash.LockRepo
	Offchain carwash.OffchainResolver
	Chain    solana.Reader
	Signer   solana.Writer
	Content  domain.ContentStore
	Notifier domain.Notifier
	Met      metrics.Service

	// Lookup resolves a family to its trait configuration. Defaults to the
	// package registry.
	Lookup func(domain.CollectionFamily) (*traits.FamilyConfig, error)

	// PaymentAmount is the exact raw token amount a wash costs
	PaymentAmount   uint64
	PaymentDecimals int32

	// FinalityAttempts bounds how long we poll for the payment transaction
	// to be confirmed before giving up
	FinalityAttempts int
	FinalityDelay    time.Duration
}

type uc struct {
	cfg Config
}

func New(cfg Config) carwash.UseCase {
	if cfg.FinalityAttempts == 0 {
		cfg.FinalityAttempts = 4
	}
	if cfg.FinalityDelay == 0 {
		cfg.FinalityDelay = time.Second
	}
	if cfg.Met == nil {
		cfg.Met = metrics.New("carwash")
	}
	if cfg.Lookup == nil {
		cfg.Lookup = traits.Lookup
	}
	return &uc{cfg}
}

func (u *uc) Wash(ctx bCtx.Ctx, req *carwash.WashRequest) (*carwash.WashResult, error) {
	defer u.cfg.Met.BumpTime("wash.time").End()

	res, err := u.wash(ctx, req)
	if res != nil {
		switch res.Status {
		case carwash.StatusWashed:
			u.cfg.Met.BumpSum("wash.washed", 1)
		case carwash.StatusRejected:
			u.cfg.Met.BumpSum("wash.rejected", 1)
		case carwash.StatusFailed:
			u.cfg.Met.BumpSum("wash.failed", 1)
		}
	}
	return res, err
}

func (u *uc) wash(ctx bCtx.Ctx, req *carwash.WashRequest) (*carwash.WashResult, error) {
	familyCfg, err := u.cfg.Lookup(req.Family)
	if err != nil {
		return &carwash.WashResult{Status: carwash.StatusRejected}, nil
	}

	token, err := u.cfg.Locks.Acquire(ctx, req.Mint)
	if err == domain.ErrWashInProgress {
		// someone is already washing this exact car; the duplicate request
		// must not produce a second ticket or a second payment claim
		return &carwash.WashResult{Status: carwash.StatusRejected}, nil
	} else if err != nil {
		u.notifyFailure(ctx, req, err)
		return &carwash.WashResult{Status: carwash.StatusFailed}, err
	}
	defer func() {
		if err := u.cfg.Locks.Release(ctx, req.Mint, token); err != nil {
			ctx.WithField("err", err).Warn("Locks.Release failed")
		}
	}()

	txn, err := u.waitForTransaction(ctx, req.Signature)
	if err != nil {
		u.notifyFailure(ctx, req, err)
		return &carwash.WashResult{Status: carwash.StatusFailed}, err
	}

	tokenMeta, err := u.cfg.Chain.GetTokenMetadata(ctx, req.Mint)
	if err != nil {
		u.notifyFailure(ctx, req, err)
		return &carwash.WashResult{Status: carwash.StatusFailed}, err
	}

	md, err := u.cfg.Offchain.Fetch(ctx, tokenMeta.Uri)
	if err != nil {
		u.notifyFailure(ctx, req, err)
		return &carwash.WashResult{Status: carwash.StatusFailed}, err
	}
	md.Mint = req.Mint

	if md.IsWashed() {
		return &carwash.WashResult{Status: carwash.StatusRejected}, nil
	}
	for _, attr := range md.Attributes {
		if familyCfg.IsBlocked(attr.Value) {
			return &carwash.WashResult{Status: carwash.StatusRejected}, nil
		}
	}
	if !validateTransferAmounts(txn, u.cfg.PaymentAmount, req.FromWallet) {
		return &carwash.WashResult{Status: carwash.StatusRejected}, nil
	}

	// payment is validated; failing past this point means the customer paid
	// for a wash they did not get, so the operator is paged
	res, err := u.generateCleanAndPublish(ctx, familyCfg, md, req)
	if err != nil {
		u.alertCritical(ctx, req, err)
		return &carwash.WashResult{Status: carwash.StatusFailed}, err
	}
	return res, nil
}

func (u *uc) waitForTransaction(ctx bCtx.Ctx, signature string) (*solana.Transaction, error) {
	bo := backoff.NewExponential(u.cfg.FinalityDelay, u.cfg.FinalityDelay)
	var lastErr error
	for i := 0; i < u.cfg.FinalityAttempts; i++ {
		txn, err := u.cfg.Chain.GetConfirmedTransaction(ctx, signature)
		if err == nil {
			return txn, nil
		}
		lastErr = err
		if err != domain.ErrTxnNotFound {
			ctx.WithFields(log.Fields{
				"err":       err,
				"signature": signature,
			}).Warn("GetConfirmedTransaction failed")
		}
		if i == u.cfg.FinalityAttempts-1 {
			break
		}
		if err := bo.Backoff(ctx); err != nil {
			return nil, err
		}
	}
	return nil, lastErr
}

func (u *uc) generateCleanAndPublish(ctx bCtx.Ctx, familyCfg *traits.FamilyConfig, md *nftmeta.Metadata, req *carwash.WashRequest) (*carwash.WashResult, error) {
	resolved := make([]nftmeta.TraitAttribute, 0, len(md.Attributes))
	layers := make([]image.Image, 0, len(md.Attributes)+1)
	for _, attr := range md.Attributes {
		clean := familyCfg.Table.Resolve(ctx, attr.TraitType, attr.Value)
		img, err := u.cfg.Layers.Layer(ctx, req.Family, attr.TraitType, clean)
		if err != nil {
			return nil, err
		}
		layers = append(layers, img)
		resolved = append(resolved, nftmeta.TraitAttribute{TraitType: attr.TraitType, Value: clean})
	}

	stamp, err := u.cfg.Layers.WashedStamp(ctx, req.Family)
	if err != nil {
		return nil, err
	}
	layers = append(layers, stamp)

	imgBytes, err := composite(layers, familyCfg.CanvasSize)
	if err != nil {
		ctx.WithField("err", err).Error("composite failed")
		return nil, err
	}

	ticket, err := u.cfg.Counter.Increment(ctx)
	if err != nil {
		return nil, err
	}

	imageUri, err := u.cfg.Content.Put(ctx, imgBytes, contentTypePng)
	if err != nil {
		return nil, err
	}

	newMd := nftmeta.Rewrite(md, resolved, imageUri, ticket)

	jsonBytes, err := json.Marshal(newMd)
	if err != nil {
		ctx.WithField("err", err).Error("json.Marshal failed")
		return nil, err
	}
	jsonUri, err := u.cfg.Content.Put(ctx, jsonBytes, contentTypeJson)
	if err != nil {
		return nil, err
	}

	updateSig, err := u.cfg.Signer.UpdateMetadataUri(ctx, req.Mint, jsonUri)
	if err != nil {
		return nil, err
	}
	ctx.WithFields(log.Fields{
		"mint":      req.Mint,
		"updateSig": updateSig,
	}).Info("metadata pointer updated")

	if err := u.cfg.Metadata.Upsert(ctx, req.Family, req.Mint, newMd); err != nil {
		return nil, err
	}

	u.cfg.Notifier.Notify(ctx, fmt.Sprintf("New Car washed! %s", imageUri))

	return &carwash.WashResult{
		Status:   carwash.StatusWashed,
		Ticket:   ticket,
		ImageUri: imageUri,
		JsonUri:  jsonUri,
		Metadata: newMd,
	}, nil
}

func (u *uc) WashedCount(ctx bCtx.Ctx) (int, error) {
	n, err := u.cfg.Counter.Get(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("Counter.Get failed")
		return 0, err
	}
	return n, nil
}

func (u *uc) WalletInventory(ctx bCtx.Ctx, wallet string) ([]*nftmeta.Metadata, error) {
	mints, err := u.cfg.Chain.GetTokenMintsByOwner(ctx, wallet)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"wallet": wallet,
		}).Error("GetTokenMintsByOwner failed")
		return nil, err
	}

	// scan every family's cache in parallel, the wallet can hold a mix
	families := traits.Families()
	b := goroutines.NewBatch(4, goroutines.WithBatchSize(len(families)))
	defer b.Close()
	for i := 0; i < len(families); i++ {
		familyCfg := families[i]
		b.Queue(func() (interface{}, error) {
			mds, err := u.cfg.Metadata.FindByMints(ctx, familyCfg.Family, mints)
			if err != nil {
				return nil, err
			}
			washable := make([]*nftmeta.Metadata, 0, len(mds))
			for _, md := range mds {
				if md.IsWashed() || u.hasBlockedTrait(familyCfg, md) {
					continue
				}
				washable = append(washable, md)
			}
			return washable, nil
		})
	}
	b.QueueComplete()

	out := []*nftmeta.Metadata{}
	var scanErr error
	for ret := range b.Results() {
		if ret.Error() != nil {
			scanErr = ret.Error()
			continue
		}
		out = append(out, ret.Value().([]*nftmeta.Metadata)...)
	}
	if scanErr != nil {
		return nil, scanErr
	}
	return out, nil
}

func (u *uc) hasBlockedTrait(familyCfg *traits.FamilyConfig, md *nftmeta.Metadata) bool {
	for _, attr := range md.Attributes {
		if familyCfg.IsBlocked(attr.Value) {
			return true
		}
	}
	return false
}

func (u *uc) notifyFailure(ctx bCtx.Ctx, req *carwash.WashRequest, err error) {
	u.cfg.Notifier.Notify(ctx, fmt.Sprintf("ERROR WITH CAR WASH: %v\n\nSignature (if exists): %s", err, req.Signature))
}

func (u *uc) alertCritical(ctx bCtx.Ctx, req *carwash.WashRequest, err error) {
	paid := decimal.New(int64(u.cfg.PaymentAmount), 0).Shift(-u.cfg.PaymentDecimals)
	u.cfg.Notifier.NotifyUrgent(ctx, fmt.Sprintf(
		"**SERIOUS ERROR WITH THE CARWASH**\n\nTxn Signature: %s\n\nMint Address: %s\n\nPaid: %s\n\nWe may have to refund this transaction!\n\n%v",
		req.Signature, req.Mint, paid.String(), err,
	))
}
