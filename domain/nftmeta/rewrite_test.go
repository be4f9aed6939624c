package nftmeta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewrite(t *testing.T) {
	original := &Metadata{
		Name:  "BitWhip #1",
		Image: "ipfs://old",
		Mint:  "Mint123",
		Attributes: []TraitAttribute{
			{TraitType: "Body", Value: "Beach Dirty"},
		},
		Properties: Properties{
			Files: []File{{Uri: "ipfs://old", Type: "image/png"}},
		},
	}

	out := Rewrite(original, []TraitAttribute{
		{TraitType: "Body", Value: "Beach Clean"},
	}, "ipfs://new", 7)

	require.Len(t, out.Attributes, 2)
	assert.Equal(t, TraitAttribute{TraitType: "Body", Value: "Beach Clean"}, out.Attributes[0])
	assert.Equal(t, TraitAttribute{TraitType: "Washed", Value: "Ticket Number: 7"}, out.Attributes[1])
	assert.Equal(t, "ipfs://new", out.Image)
	assert.Equal(t, "ipfs://new", out.Properties.Files[0].Uri)
	assert.Empty(t, out.Mint)

	// input untouched
	assert.Equal(t, "ipfs://old", original.Image)
	assert.Equal(t, "Beach Dirty", original.Attributes[0].Value)
	assert.Equal(t, "ipfs://old", original.Properties.Files[0].Uri)
	assert.Equal(t, "Mint123", original.Mint)
}

func TestIsWashed(t *testing.T) {
	md := &Metadata{Attributes: []TraitAttribute{{TraitType: "Body", Value: "Beach Clean"}}}
	assert.False(t, md.IsWashed())

	md.Attributes = append(md.Attributes, TraitAttribute{TraitType: WashedTraitType, Value: "Ticket Number: 1"})
	assert.True(t, md.IsWashed())
}
