package solana

import (
	"encoding/binary"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/require"
)

func appendBorshString(b []byte, s string, padTo int) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, uint32(padTo))
	b = append(b, buf...)
	b = append(b, []byte(s)...)
	for i := len(s); i < padTo; i++ {
		b = append(b, 0)
	}
	return b
}

func Test_parseMetadata(t *testing.T) {
	req := require.New(t)

	authority := make([]byte, 32)
	authority[0] = 1
	mint := make([]byte, 32)
	mint[0] = 2

	data := []byte{4} // key
	data = append(data, authority...)
	data = append(data, mint...)
	data = appendBorshString(data, "BitWhip #123", 32)
	data = appendBorshString(data, "WHIP", 10)
	data = appendBorshString(data, "https://arweave.net/abc123", 200)

	md, err := parseMetadata(data)
	req.NoError(err)
	req.Equal(base58.Encode(authority), md.UpdateAuthority)
	req.Equal(base58.Encode(mint), md.Mint)
	req.Equal("BitWhip #123", md.Name)
	req.Equal("WHIP", md.Symbol)
	req.Equal("https://arweave.net/abc123", md.Uri)
}

func Test_parseMetadata_truncated(t *testing.T) {
	req := require.New(t)

	_, err := parseMetadata([]byte{4, 0, 0})
	req.Equal(ErrMalformedMetadata, err)

	data := []byte{4}
	data = append(data, make([]byte, 64)...)
	data = append(data, 0xff, 0xff, 0xff, 0xff)
	_, err = parseMetadata(data)
	req.Equal(ErrMalformedMetadata, err)
}
