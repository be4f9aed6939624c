package solana

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bCtx "github.com/bitwhips/washapi/base/ctx"
	"github.com/bitwhips/washapi/domain"
)

func newTestReader(handler http.HandlerFunc) (*impl, *httptest.Server) {
	server := httptest.NewServer(handler)
	reader := New(ClientCfg{
		HttpClient: http.Client{},
		Endpoint:   server.URL,
		Timeout:    5 * time.Second,
	}).(*impl)
	return reader, server
}

func Test_GetConfirmedTransaction(t *testing.T) {
	req := require.New(t)

	reader, server := newTestReader(func(w http.ResponseWriter, r *http.Request) {
		body := rpcRequest{}
		req.NoError(json.NewDecoder(r.Body).Decode(&body))
		req.Equal("getTransaction", body.Method)

		w.Write([]byte(`{
			"jsonrpc": "2.0",
			"id": 1,
			"result": {
				"slot": 123456,
				"meta": {
					"err": null,
					"preTokenBalances": [
						{"accountIndex": 1, "mint": "DustMint", "owner": "Payer111", "uiTokenAmount": {"amount": "500", "decimals": 9}}
					],
					"postTokenBalances": [
						{"accountIndex": 1, "mint": "DustMint", "owner": "Payer111", "uiTokenAmount": {"amount": "400", "decimals": 9}}
					]
				},
				"transaction": {
					"message": {
						"accountKeys": [
							{"pubkey": "Payer111"},
							{"pubkey": "Treasury222"}
						]
					}
				}
			}
		}`))
	})
	defer server.Close()

	txn, err := reader.GetConfirmedTransaction(bCtx.Background(), "sig123")
	req.NoError(err)
	req.Equal(uint64(123456), txn.Slot)
	req.Equal([]string{"Payer111", "Treasury222"}, txn.AccountKeys)
	req.Len(txn.Meta.PreTokenBalances, 1)

	raw, err := txn.Meta.PreTokenBalances[0].UiTokenAmount.Raw()
	req.NoError(err)
	req.Equal(uint64(500), raw)
}

func Test_GetConfirmedTransaction_notFound(t *testing.T) {
	req := require.New(t)

	reader, server := newTestReader(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"jsonrpc": "2.0", "id": 1, "result": null}`))
	})
	defer server.Close()

	_, err := reader.GetConfirmedTransaction(bCtx.Background(), "unknown")
	req.Equal(domain.ErrTxnNotFound, err)
}

func Test_GetTokenMintsByOwner(t *testing.T) {
	req := require.New(t)

	reader, server := newTestReader(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"jsonrpc": "2.0",
			"id": 1,
			"result": {
				"value": [
					{"account": {"data": {"parsed": {"info": {"mint": "NftMint1", "tokenAmount": {"amount": "1", "decimals": 0}}}}}},
					{"account": {"data": {"parsed": {"info": {"mint": "FungibleMint", "tokenAmount": {"amount": "5000", "decimals": 9}}}}}},
					{"account": {"data": {"parsed": {"info": {"mint": "EmptyAccount", "tokenAmount": {"amount": "0", "decimals": 0}}}}}},
					{"account": {"data": {"parsed": {"info": {"mint": "NftMint2", "tokenAmount": {"amount": "1", "decimals": 0}}}}}}
				]
			}
		}`))
	})
	defer server.Close()

	mints, err := reader.GetTokenMintsByOwner(bCtx.Background(), "Wallet111")
	req.NoError(err)
	req.Equal([]string{"NftMint1", "NftMint2"}, mints)
}

func Test_signer_UpdateMetadataUri(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("/updatemetadata", r.URL.Path)
		body := updateMetadataReq{}
		req.NoError(json.NewDecoder(r.Body).Decode(&body))
		req.Equal("Mint123", body.Mint)
		req.Equal("https://ipfs.io/ipfs/QmNew", body.Uri)
		w.Write([]byte(`{"signature": "updateSig"}`))
	}))
	defer server.Close()

	writer := NewSigner(ClientCfg{
		HttpClient: http.Client{},
		Endpoint:   server.URL,
		Timeout:    5 * time.Second,
	})

	sig, err := writer.UpdateMetadataUri(bCtx.Background(), "Mint123", "https://ipfs.io/ipfs/QmNew")
	req.NoError(err)
	req.Equal("updateSig", sig)
}
