package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/bitwhips/washapi/base/ctx"
	"github.com/bitwhips/washapi/base/log"
	"github.com/bitwhips/washapi/domain"
	"github.com/bitwhips/washapi/domain/carwash"
	"github.com/bitwhips/washapi/domain/nftmeta"
	"github.com/bitwhips/washapi/domain/traits"
	"github.com/bitwhips/washapi/service/query"
)

type metadataDoc struct {
	MintAddress string            `json:"mintAddress" bson:"mintAddress"`
	Metadata    *nftmeta.Metadata `json:"metadata" bson:"metadata"`
}

type metadataCacheRepo struct {
	q query.Mongo
}

func NewMetadataCacheRepo(q query.Mongo) carwash.MetadataCacheRepo {
	return &metadataCacheRepo{q}
}

func (r *metadataCacheRepo) Get(ctx bCtx.Ctx, family domain.CollectionFamily, mint string) (*nftmeta.Metadata, error) {
	cfg, err := traits.Lookup(family)
	if err != nil {
		return nil, err
	}
	doc := metadataDoc{}
	err = r.q.FindOne(ctx, cfg.MetadataTable, bson.M{"mintAddress": mint}, &doc)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	md := doc.Metadata
	md.Mint = doc.MintAddress
	return md, nil
}

func (r *metadataCacheRepo) FindByMints(ctx bCtx.Ctx, family domain.CollectionFamily, mints []string) ([]*nftmeta.Metadata, error) {
	cfg, err := traits.Lookup(family)
	if err != nil {
		return nil, err
	}
	docs := []metadataDoc{}
	qry := bson.M{"mintAddress": bson.M{"$in": mints}}
	if err := r.q.Search(ctx, cfg.MetadataTable, 0, len(mints), "", qry, &docs); err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"family": family,
		}).Error("q.Search failed")
		return nil, err
	}
	out := make([]*nftmeta.Metadata, 0, len(docs))
	for _, doc := range docs {
		md := doc.Metadata
		md.Mint = doc.MintAddress
		out = append(out, md)
	}
	return out, nil
}

func (r *metadataCacheRepo) Upsert(ctx bCtx.Ctx, family domain.CollectionFamily, mint string, metadata *nftmeta.Metadata) error {
	cfg, err := traits.Lookup(family)
	if err != nil {
		return err
	}
	// the published json never carries the mint; the document key does
	md := metadata.Copy()
	md.Mint = ""
	doc := metadataDoc{MintAddress: mint, Metadata: md}
	if err := r.q.Upsert(ctx, cfg.MetadataTable, bson.M{"mintAddress": mint}, doc); err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"mint": mint,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}
