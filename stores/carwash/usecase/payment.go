package usecase

import (
	"github.com/bitwhips/washapi/domain/solana"
)

// validateTransferAmounts accepts a transaction as payment only when the
// payer's balance (index 0 of the token balance snapshots) dropped by exactly
// `expected` and the treasury's balance (index 1) grew by exactly `expected`.
// Overpayment is rejected the same as underpayment; refunds are manual and
// expensive. The claimed payer must also be the transaction's first signer.
func validateTransferAmounts(txn *solana.Transaction, expected uint64, claimedPayer string) bool {
	pre := txn.Meta.PreTokenBalances
	post := txn.Meta.PostTokenBalances
	if len(pre) < 2 || len(post) < 2 {
		return false
	}

	preFrom, err := pre[0].UiTokenAmount.Raw()
	if err != nil {
		return false
	}
	postFrom, err := post[0].UiTokenAmount.Raw()
	if err != nil {
		return false
	}
	preTo, err := pre[1].UiTokenAmount.Raw()
	if err != nil {
		return false
	}
	postTo, err := post[1].UiTokenAmount.Raw()
	if err != nil {
		return false
	}

	fromSent := preFrom >= postFrom && preFrom-postFrom == expected
	toGot := postTo >= preTo && postTo-preTo == expected
	if !fromSent || !toGot {
		return false
	}

	return len(txn.AccountKeys) > 0 && txn.AccountKeys[0] == claimedPayer
}
