package solana

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io/ioutil"
	"net/http"

	"golang.org/x/xerrors"

	bCtx "github.com/bitwhips/washapi/base/ctx"
	"github.com/bitwhips/washapi/base/log"
	"github.com/bitwhips/washapi/domain"
	"github.com/bitwhips/washapi/domain/solana"
)

type impl struct {
	cfg ClientCfg
}

// New builds a Reader over a json-rpc node endpoint
func New(cfg ClientCfg) solana.Reader {
	return &impl{cfg}
}

func (im *impl) call(c bCtx.Ctx, method string, params []interface{}, result interface{}) error {
	ctx, cancel := bCtx.WithTimeout(c, im.cfg.Timeout)
	defer cancel()

	body, err := json.Marshal(rpcRequest{
		JsonRpc: "2.0",
		Id:      1,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", im.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := im.cfg.HttpClient.Do(req)
	if err != nil {
		ctx.WithField("err", err).Warn("rpc request failed")
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"method":     method,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		return ErrStatusCodeNotOk
	}

	raw, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	rpcResp := rpcResponse{}
	if err := json.Unmarshal(raw, &rpcResp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return err
	}
	if rpcResp.Error != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"code":   rpcResp.Error.Code,
			"msg":    rpcResp.Error.Message,
		}).Error("rpc returned error")
		return xerrors.Errorf("rpc error: %s", rpcResp.Error.Message)
	}
	if len(rpcResp.Result) == 0 || string(rpcResp.Result) == "null" {
		return ErrEmptyRpcResult
	}

	return json.Unmarshal(rpcResp.Result, result)
}

type accountKey struct {
	Pubkey string `json:"pubkey"`
}

type getTransactionResult struct {
	Slot        uint64                 `json:"slot"`
	Meta        solana.TransactionMeta `json:"meta"`
	Transaction struct {
		Message struct {
			AccountKeys []accountKey `json:"accountKeys"`
		} `json:"message"`
	} `json:"transaction"`
}

func (im *impl) GetConfirmedTransaction(c bCtx.Ctx, signature string) (*solana.Transaction, error) {
	result := getTransactionResult{}
	params := []interface{}{
		signature,
		map[string]interface{}{
			"encoding":                       "jsonParsed",
			"commitment":                     "finalized",
			"maxSupportedTransactionVersion": 0,
		},
	}
	if err := im.call(c, "getTransaction", params, &result); err != nil {
		if err == ErrEmptyRpcResult {
			return nil, domain.ErrTxnNotFound
		}
		return nil, err
	}

	keys := make([]string, 0, len(result.Transaction.Message.AccountKeys))
	for _, k := range result.Transaction.Message.AccountKeys {
		keys = append(keys, k.Pubkey)
	}

	return &solana.Transaction{
		Signature:   signature,
		Slot:        result.Slot,
		AccountKeys: keys,
		Meta:        result.Meta,
	}, nil
}

type getAccountInfoResult struct {
	Value *struct {
		Data []string `json:"data"`
	} `json:"value"`
}

func (im *impl) GetTokenMetadata(c bCtx.Ctx, mint string) (*solana.TokenMetadata, error) {
	address, err := MetadataAddress(mint)
	if err != nil {
		c.WithField("err", err).Error("MetadataAddress failed")
		return nil, err
	}

	result := getAccountInfoResult{}
	params := []interface{}{
		address,
		map[string]interface{}{"encoding": "base64"},
	}
	if err := im.call(c, "getAccountInfo", params, &result); err != nil {
		return nil, err
	}
	if result.Value == nil || len(result.Value.Data) == 0 {
		return nil, domain.ErrMetadataUnavailable
	}

	raw, err := base64.StdEncoding.DecodeString(result.Value.Data[0])
	if err != nil {
		c.WithField("err", err).Error("base64.Decode failed")
		return nil, err
	}

	return parseMetadata(raw)
}

type getTokenAccountsResult struct {
	Value []struct {
		Account struct {
			Data struct {
				Parsed struct {
					Info struct {
						Mint        string             `json:"mint"`
						TokenAmount solana.TokenAmount `json:"tokenAmount"`
					} `json:"info"`
				} `json:"parsed"`
			} `json:"data"`
		} `json:"account"`
	} `json:"value"`
}

func (im *impl) GetTokenMintsByOwner(c bCtx.Ctx, wallet string) ([]string, error) {
	result := getTokenAccountsResult{}
	params := []interface{}{
		wallet,
		map[string]interface{}{"programId": TokenProgramId},
		map[string]interface{}{"encoding": "jsonParsed"},
	}
	if err := im.call(c, "getTokenAccountsByOwner", params, &result); err != nil {
		return nil, err
	}

	mints := []string{}
	for _, v := range result.Value {
		info := v.Account.Data.Parsed.Info
		// nft token accounts hold exactly one unit of a zero-decimal mint
		if info.TokenAmount.Amount == "1" && info.TokenAmount.Decimals == 0 {
			mints = append(mints, info.Mint)
		}
	}
	return mints, nil
}
