package repository

import (
	"bytes"
	"image"
	"image/png"
	"io/ioutil"
	"path/filepath"
	"regexp"
	"time"

	bCtx "github.com/bitwhips/washapi/base/ctx"
	"github.com/bitwhips/washapi/base/log"
	"github.com/bitwhips/washapi/domain"
	"github.com/bitwhips/washapi/domain/carwash"
	"github.com/bitwhips/washapi/domain/keys"
	"github.com/bitwhips/washapi/domain/traits"
	"github.com/bitwhips/washapi/service/cache/provider"
	"github.com/bitwhips/washapi/service/cache/provider/primitive"
)

// layer files carry a rarity weight suffix, e.g. "Miami Blue Clean#10.png".
// The leading run of word characters, spaces and ampersands is the trait value.
var removeWeightRegex = regexp.MustCompile(`^[\w\s&]+`)

const (
	washedCategory = "Washed"
	washedValue    = "Washed"

	layerCacheSizeMb = 256
	layerCacheTtl    = time.Hour
)

type layerFsRepo struct {
	root  string
	cache provider.Provider
}

// NewLayerFsRepo serves layer art from a directory tree laid out as
// <root>/<namespace>/<category>/<value>#<weight>.png, with decoded-file bytes
// held in an in-process cache.
func NewLayerFsRepo(root string) carwash.LayerRepo {
	return &layerFsRepo{
		root:  root,
		cache: primitive.NewPrimitive("layers", layerCacheSizeMb),
	}
}

func (r *layerFsRepo) Layer(ctx bCtx.Ctx, family domain.CollectionFamily, category, value string) (image.Image, error) {
	cfg, err := traits.Lookup(family)
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(r.root, cfg.LayerNamespace, category)
	files, err := ioutil.ReadDir(dir)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"category": category,
		}).Error("locating category failed")
		return nil, domain.ErrAssetNotFound
	}

	for _, f := range files {
		if f.IsDir() {
			continue
		}
		if removeWeightRegex.FindString(f.Name()) == value {
			return r.load(ctx, filepath.Join(dir, f.Name()))
		}
	}

	ctx.WithFields(log.Fields{
		"category": category,
		"value":    value,
	}).Error("no layer asset matches trait")
	return nil, domain.ErrAssetNotFound
}

func (r *layerFsRepo) WashedStamp(ctx bCtx.Ctx, family domain.CollectionFamily) (image.Image, error) {
	return r.Layer(ctx, family, washedCategory, washedValue)
}

func (r *layerFsRepo) load(ctx bCtx.Ctx, path string) (image.Image, error) {
	key := keys.RedisKey(keys.PfxLayerImage, path)

	raw, err := r.cache.Get(ctx, key)
	if err != nil {
		raw, err = ioutil.ReadFile(path)
		if err != nil {
			ctx.WithFields(log.Fields{
				"err":  err,
				"path": path,
			}).Error("ioutil.ReadFile failed")
			return nil, domain.ErrAssetNotFound
		}
		if err := r.cache.Set(ctx, key, raw, layerCacheTtl); err != nil {
			ctx.WithField("err", err).Warn("cache.Set failed")
		}
	}

	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"path": path,
		}).Error("png.Decode failed")
		return nil, err
	}
	return img, nil
}
