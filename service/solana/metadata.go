package solana

import (
	"encoding/binary"
	"errors"
	"strings"

	"github.com/mr-tron/base58"

	"github.com/bitwhips/washapi/domain/solana"
)

var (
	ErrMalformedMetadata = errors.New("malformed metadata account")
)

// parseMetadata decodes the borsh-serialized prefix of a token-metadata
// account: key u8, update authority 32 bytes, mint 32 bytes, then
// u32-length-prefixed name, symbol and uri. Strings are padded with NUL.
func parseMetadata(data []byte) (*solana.TokenMetadata, error) {
	if len(data) < 1+32+32 {
		return nil, ErrMalformedMetadata
	}

	offset := 1
	updateAuthority := base58.Encode(data[offset : offset+32])
	offset += 32
	mint := base58.Encode(data[offset : offset+32])
	offset += 32

	name, offset, err := readString(data, offset)
	if err != nil {
		return nil, err
	}
	symbol, offset, err := readString(data, offset)
	if err != nil {
		return nil, err
	}
	uri, _, err := readString(data, offset)
	if err != nil {
		return nil, err
	}

	return &solana.TokenMetadata{
		Mint:            mint,
		UpdateAuthority: updateAuthority,
		Name:            name,
		Symbol:          symbol,
		Uri:             uri,
	}, nil
}

func readString(data []byte, offset int) (string, int, error) {
	if len(data) < offset+4 {
		return "", 0, ErrMalformedMetadata
	}
	size := int(binary.LittleEndian.Uint32(data[offset : offset+4]))
	offset += 4
	if len(data) < offset+size {
		return "", 0, ErrMalformedMetadata
	}
	s := strings.TrimRight(string(data[offset:offset+size]), "\x00")
	return s, offset + size, nil
}
