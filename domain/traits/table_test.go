package traits

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitwhips/washapi/base/ctx"
	"github.com/bitwhips/washapi/domain"
)

func TestResolve(t *testing.T) {
	c := ctx.Background()

	tests := []struct {
		category string
		value    string
		want     string
	}{
		{"Body", "Beach Dirty", "Beach Clean"},
		{"Body", "Beach Carbon Patina", "Beach Carbon"},
		{"Body", "Beach Clean", "Beach Clean"},
		{"Body", "Never Heard Of It", "Never Heard Of It"},
		{"NoSuchCategory", "Whatever", "Whatever"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%s", tt.category, tt.value), func(t *testing.T) {
			assert.Equal(t, tt.want, LandevoTable.Resolve(c, tt.category, tt.value))
		})
	}
}

func TestResolveIdempotent(t *testing.T) {
	c := ctx.Background()
	for _, cfg := range Families() {
		for _, cat := range cfg.Table.Categories {
			for _, entry := range cat.Entries {
				for _, dirty := range entry.Dirty {
					clean := cfg.Table.Resolve(c, cat.Name, dirty)
					assert.Equal(t, clean, cfg.Table.Resolve(c, cat.Name, clean),
						"%s %s/%s", cfg.Family, cat.Name, dirty)
				}
			}
		}
	}
}

// The dirty sets of a category must be disjoint, otherwise resolution would
// depend on declaration order.
func TestTableDirtySetsDisjoint(t *testing.T) {
	for _, cfg := range Families() {
		for _, cat := range cfg.Table.Categories {
			seen := map[string]string{}
			for _, entry := range cat.Entries {
				for _, dirty := range entry.Dirty {
					prev, dup := seen[dirty]
					assert.False(t, dup,
						"%s %s: %q maps to both %q and %q", cfg.Family, cat.Name, dirty, prev, entry.Clean)
					seen[dirty] = entry.Clean
				}
			}
		}
	}
}

func TestLookup(t *testing.T) {
	cfg, err := Lookup(domain.FamilyLandevo)
	require.NoError(t, err)
	assert.Equal(t, "landevo_layers", cfg.LayerNamespace)
	assert.Equal(t, domain.TableLandevoMetadata, cfg.MetadataTable)

	_, err = Lookup(domain.CollectionFamily("banana"))
	assert.Equal(t, domain.ErrInvalidCollectionFamily, err)
}

func TestIsBlocked(t *testing.T) {
	cfg := &FamilyConfig{BlockedTraits: []string{"Gold Plated"}}
	assert.True(t, cfg.IsBlocked("Gold Plated"))
	assert.False(t, cfg.IsBlocked("Beach Clean"))
}
