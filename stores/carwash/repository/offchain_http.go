package repository

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"time"

	bCtx "github.com/bitwhips/washapi/base/ctx"
	"github.com/bitwhips/washapi/base/log"
	"github.com/bitwhips/washapi/domain"
	"github.com/bitwhips/washapi/domain/carwash"
	"github.com/bitwhips/washapi/domain/nftmeta"
)

type offchainHttpResolver struct {
	client     http.Client
	ctxTimeout time.Duration
}

// NewOffchainHttpResolver follows a token's uri pointer (arweave or ipfs
// gateway) and decodes the off-chain json.
func NewOffchainHttpResolver(client http.Client, timeout time.Duration) carwash.OffchainResolver {
	return &offchainHttpResolver{client: client, ctxTimeout: timeout}
}

func (r *offchainHttpResolver) Fetch(c bCtx.Ctx, uri string) (*nftmeta.Metadata, error) {
	ctx, cancel := bCtx.WithTimeout(c, r.ctxTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", uri, nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		ctx.WithField("uri", uri).Warn("failed with request")
		return nil, domain.ErrMetadataUnavailable
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"uri":        uri,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		return nil, domain.ErrMetadataUnavailable
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"uri": uri,
			"err": err,
		}).Error("failed to read body")
		return nil, err
	}

	md := &nftmeta.Metadata{}
	if err := json.Unmarshal(body, md); err != nil {
		ctx.WithFields(log.Fields{
			"uri": uri,
			"err": err,
		}).Error("json.Unmarshal failed")
		return nil, err
	}
	return md, nil
}
