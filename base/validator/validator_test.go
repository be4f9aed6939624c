package validator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func (s *ValidatorTestSuite) TestIsValidWallet() {
	tests := []struct {
		desc       string
		address    string
		expIsValid bool
	}{
		{
			desc:       "too short",
			address:    "abc",
			expIsValid: false,
		},
		{
			desc:       "contains non-base58 characters",
			address:    "0x939ae6A4C8dfDBB1f7085189574F0A938013952A",
			expIsValid: false,
		},
		{
			desc:       "valid wallet",
			address:    "4Nd1mBQtrMJVYVfKf2PJy9NZaZdRxEzUoSrbiGG1nFDW",
			expIsValid: true,
		},
		{
			desc:       "system program id",
			address:    "11111111111111111111111111111111",
			expIsValid: true,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidWallet(t.address), t.desc)
	}
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
