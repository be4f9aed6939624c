package solana

import (
	"crypto/sha256"
	"errors"

	"filippo.io/edwards25519"
	"github.com/mr-tron/base58"
)

var (
	ErrNoViableBump = errors.New("unable to find a viable program address bump")
)

// FindProgramAddress derives the first off-curve address for the given
// seeds, walking the bump seed down from 255.
func FindProgramAddress(seeds [][]byte, programId string) (string, error) {
	program, err := base58.Decode(programId)
	if err != nil {
		return "", err
	}

	for bump := 255; bump >= 0; bump-- {
		h := sha256.New()
		for _, seed := range seeds {
			h.Write(seed)
		}
		h.Write([]byte{byte(bump)})
		h.Write(program)
		h.Write([]byte("ProgramDerivedAddress"))
		digest := h.Sum(nil)

		// a program address must not lie on the ed25519 curve
		if !isOnCurve(digest) {
			return base58.Encode(digest), nil
		}
	}

	return "", ErrNoViableBump
}

// MetadataAddress derives the token-metadata account of a mint
func MetadataAddress(mint string) (string, error) {
	program, err := base58.Decode(MetadataProgramId)
	if err != nil {
		return "", err
	}
	m, err := base58.Decode(mint)
	if err != nil {
		return "", err
	}
	return FindProgramAddress([][]byte{[]byte("metadata"), program, m}, MetadataProgramId)
}

func isOnCurve(b []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(b)
	return err == nil
}
