package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitwhips/washapi/domain/solana"
)

const washPrice = uint64(100_000_000_000)

func paidTxn(payer string, preFrom, postFrom, preTo, postTo string) *solana.Transaction {
	return &solana.Transaction{
		Signature:   "Sig123",
		AccountKeys: []string{payer, "Treasury111"},
		Meta: solana.TransactionMeta{
			PreTokenBalances: []solana.TokenBalance{
				{AccountIndex: 0, UiTokenAmount: solana.TokenAmount{Amount: preFrom, Decimals: 9}},
				{AccountIndex: 1, UiTokenAmount: solana.TokenAmount{Amount: preTo, Decimals: 9}},
			},
			PostTokenBalances: []solana.TokenBalance{
				{AccountIndex: 0, UiTokenAmount: solana.TokenAmount{Amount: postFrom, Decimals: 9}},
				{AccountIndex: 1, UiTokenAmount: solana.TokenAmount{Amount: postTo, Decimals: 9}},
			},
		},
	}
}

func TestValidateTransferAmounts(t *testing.T) {
	tests := []struct {
		name string
		txn  *solana.Transaction
		want bool
	}{
		{
			name: "exact payment",
			txn:  paidTxn("Payer111", "500000000000", "400000000000", "0", "100000000000"),
			want: true,
		},
		{
			name: "underpaid by one",
			txn:  paidTxn("Payer111", "500000000000", "400000000001", "0", "99999999999"),
			want: false,
		},
		{
			name: "overpaid by one",
			txn:  paidTxn("Payer111", "500000000000", "399999999999", "0", "100000000001"),
			want: false,
		},
		{
			name: "payer balance grew instead of shrank",
			txn:  paidTxn("Payer111", "400000000000", "500000000000", "100000000000", "0"),
			want: false,
		},
		{
			name: "treasury did not receive",
			txn:  paidTxn("Payer111", "500000000000", "400000000000", "0", "0"),
			want: false,
		},
		{
			name: "unparseable amount",
			txn:  paidTxn("Payer111", "not-a-number", "400000000000", "0", "100000000000"),
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validateTransferAmounts(tt.txn, washPrice, "Payer111"))
		})
	}
}

func TestValidateTransferAmountsPayerMismatch(t *testing.T) {
	txn := paidTxn("SomeoneElse", "500000000000", "400000000000", "0", "100000000000")
	assert.False(t, validateTransferAmounts(txn, washPrice, "Payer111"))
}

func TestValidateTransferAmountsMissingBalances(t *testing.T) {
	txn := &solana.Transaction{
		AccountKeys: []string{"Payer111"},
		Meta: solana.TransactionMeta{
			PreTokenBalances: []solana.TokenBalance{
				{AccountIndex: 0, UiTokenAmount: solana.TokenAmount{Amount: "100", Decimals: 9}},
			},
		},
	}
	assert.False(t, validateTransferAmounts(txn, washPrice, "Payer111"))
}
