package solana

import (
	"strconv"

	"github.com/bitwhips/washapi/base/ctx"
)

// TokenAmount is a raw token amount plus its decimals, as reported in a
// transaction's token balance snapshots. Amount is kept as the chain's string
// encoding; Raw parses it.
type TokenAmount struct {
	Amount   string `json:"amount"`
	Decimals int    `json:"decimals"`
}

func (a TokenAmount) Raw() (uint64, error) {
	return strconv.ParseUint(a.Amount, 10, 64)
}

// TokenBalance is one account's token balance snapshot taken before or after
// a transaction executed.
type TokenBalance struct {
	AccountIndex  int         `json:"accountIndex"`
	Mint          string      `json:"mint"`
	Owner         string      `json:"owner"`
	UiTokenAmount TokenAmount `json:"uiTokenAmount"`
}

type TransactionMeta struct {
	Err               interface{}    `json:"err"`
	PreTokenBalances  []TokenBalance `json:"preTokenBalances"`
	PostTokenBalances []TokenBalance `json:"postTokenBalances"`
}

// Transaction is the slice of a confirmed transaction the wash flow needs:
// the ordered account keys of the message (index 0 is the fee payer / first
// signer) and the pre/post token balance snapshots.
type Transaction struct {
	Signature   string
	Slot        uint64
	AccountKeys []string
	Meta        TransactionMeta
}

// TokenMetadata is the on-chain metadata account of a mint. Uri is the
// pointer to the off-chain json.
type TokenMetadata struct {
	Mint            string
	UpdateAuthority string
	Name            string
	Symbol          string
	Uri             string
}

// Reader is the read side of the chain, kept narrow so tests run against a
// mock instead of the network.
type Reader interface {
	// GetConfirmedTransaction fetches a finalized transaction, returning
	// domain.ErrTxnNotFound while the signature is unknown or not yet
	// confirmed.
	GetConfirmedTransaction(c ctx.Ctx, signature string) (*Transaction, error)

	// GetTokenMetadata fetches and decodes the metadata account of a mint.
	GetTokenMetadata(c ctx.Ctx, mint string) (*TokenMetadata, error)

	// GetTokenMintsByOwner lists the mints of the wallet's non-empty token
	// accounts.
	GetTokenMintsByOwner(c ctx.Ctx, wallet string) ([]string, error)
}

// Writer is the write side of the chain. The update authority keypair lives
// with the treasury signer, never in this service.
type Writer interface {
	// UpdateMetadataUri rewrites the metadata account's uri pointer and
	// returns the update transaction signature.
	UpdateMetadataUri(c ctx.Ctx, mint, newUri string) (string, error)
}
