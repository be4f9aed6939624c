package solana

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"

	"github.com/bitwhips/washapi/base/ctx"
	"github.com/bitwhips/washapi/base/log"
	"github.com/bitwhips/washapi/domain/solana"
)

// signerImpl talks to the treasury signer sidecar, which holds the update
// authority keypair and submits metadata update transactions on our behalf.
type signerImpl struct {
	cfg ClientCfg
}

func NewSigner(cfg ClientCfg) solana.Writer {
	return &signerImpl{cfg}
}

type updateMetadataReq struct {
	Mint string `json:"mint"`
	Uri  string `json:"uri"`
}

type updateMetadataResp struct {
	Signature string `json:"signature"`
}

func (im *signerImpl) UpdateMetadataUri(c ctx.Ctx, mint, newUri string) (string, error) {
	ctx, cancel := ctx.WithTimeout(c, im.cfg.Timeout)
	defer cancel()

	body, err := json.Marshal(updateMetadataReq{Mint: mint, Uri: newUri})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", im.cfg.Endpoint+"/updatemetadata", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := im.cfg.HttpClient.Do(req)
	if err != nil {
		ctx.WithField("err", err).Error("signer request failed")
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"mint":       mint,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		return "", ErrStatusCodeNotOk
	}

	raw, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	result := updateMetadataResp{}
	if err := json.Unmarshal(raw, &result); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return "", err
	}
	return result.Signature, nil
}
