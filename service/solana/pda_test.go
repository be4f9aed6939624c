package solana

import (
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/require"
)

func Test_FindProgramAddress(t *testing.T) {
	req := require.New(t)

	seeds := [][]byte{[]byte("metadata"), []byte("some-seed")}
	addr, err := FindProgramAddress(seeds, MetadataProgramId)
	req.NoError(err)

	raw, err := base58.Decode(addr)
	req.NoError(err)
	req.Len(raw, 32)
	req.False(isOnCurve(raw))

	// derivation is deterministic
	again, err := FindProgramAddress(seeds, MetadataProgramId)
	req.NoError(err)
	req.Equal(addr, again)

	// different seeds land on a different address
	other, err := FindProgramAddress([][]byte{[]byte("metadata"), []byte("other-seed")}, MetadataProgramId)
	req.NoError(err)
	req.NotEqual(addr, other)
}

func Test_MetadataAddress(t *testing.T) {
	req := require.New(t)

	mint := "7Xskr1sJ9PAUizzarfQyJdNBGBYLTXfw4NsbTxNiSCdK"
	addr, err := MetadataAddress(mint)
	req.NoError(err)

	raw, err := base58.Decode(addr)
	req.NoError(err)
	req.Len(raw, 32)

	_, err = MetadataAddress("not base58 IlO0")
	req.Error(err)
}
