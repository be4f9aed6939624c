package repository

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bCtx "github.com/bitwhips/washapi/base/ctx"
	"github.com/bitwhips/washapi/domain"
)

func Test_offchainHttpResolver_Fetch(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"name": "BitWhip #123",
			"symbol": "WHIP",
			"image": "https://arweave.net/img",
			"attributes": [
				{"trait_type": "Body", "value": "Miami Blue Dirty"},
				{"trait_type": "Wheels", "value": "Big Ballin Dirty"}
			],
			"properties": {"files": [{"uri": "https://arweave.net/img", "type": "image/png"}]}
		}`))
	}))
	defer server.Close()

	resolver := NewOffchainHttpResolver(http.Client{}, 5*time.Second)
	md, err := resolver.Fetch(bCtx.Background(), server.URL)
	req.NoError(err)
	req.Equal("BitWhip #123", md.Name)
	req.Len(md.Attributes, 2)
	req.Equal("Body", md.Attributes[0].TraitType)
	req.False(md.IsWashed())
}

func Test_offchainHttpResolver_Fetch_non200(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	resolver := NewOffchainHttpResolver(http.Client{}, 5*time.Second)
	_, err := resolver.Fetch(bCtx.Background(), server.URL)
	req.Equal(domain.ErrMetadataUnavailable, err)
}
