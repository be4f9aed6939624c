package traits

import (
	"github.com/bitwhips/washapi/domain"
)

// FamilyConfig bundles everything downstream lookups select by family: the
// resolution table, the layer asset namespace, the mongo table caching the
// family's metadata and the square canvas size its layers are rendered at.
// Adding a collection family is a registration here, not a new code branch.
type FamilyConfig struct {
	Family         domain.CollectionFamily
	Table          *Table
	LayerNamespace string
	MetadataTable  domain.Table
	CanvasSize     int

	// BlockedTraits lists trait values that make a token ineligible for
	// washing, e.g. one-of-one specials without layered source art. Extended
	// per family as specials are minted.
	BlockedTraits []string
}

// IsBlocked reports whether a trait value disqualifies the token.
func (f *FamilyConfig) IsBlocked(value string) bool {
	for _, t := range f.BlockedTraits {
		if t == value {
			return true
		}
	}
	return false
}

var registry = map[domain.CollectionFamily]*FamilyConfig{
	domain.FamilyLandevo: {
		Family:         domain.FamilyLandevo,
		Table:          LandevoTable,
		LayerNamespace: "landevo_layers",
		MetadataTable:  domain.TableLandevoMetadata,
		CanvasSize:     1500,
	},
	domain.FamilyTeslerr: {
		Family:         domain.FamilyTeslerr,
		Table:          TeslerrTable,
		LayerNamespace: "teslerr_layers",
		MetadataTable:  domain.TableTeslerrMetadata,
		CanvasSize:     1500,
	},
	domain.FamilyTreeFiddy: {
		Family:         domain.FamilyTreeFiddy,
		Table:          TreeFiddyTable,
		LayerNamespace: "treefiddy_layers",
		MetadataTable:  domain.TableTreeFiddyMetadata,
		CanvasSize:     1500,
	},
	domain.FamilyGojira: {
		Family:         domain.FamilyGojira,
		Table:          GojiraTable,
		LayerNamespace: "gojira_layers",
		MetadataTable:  domain.TableGojiraMetadata,
		CanvasSize:     1500,
	},
}

// Lookup returns the config registered for a family.
func Lookup(family domain.CollectionFamily) (*FamilyConfig, error) {
	cfg, ok := registry[family]
	if !ok {
		return nil, domain.ErrInvalidCollectionFamily
	}
	return cfg, nil
}

// Families lists every registered family, useful for cross-family cache scans.
func Families() []*FamilyConfig {
	out := make([]*FamilyConfig, 0, len(registry))
	for _, f := range []domain.CollectionFamily{
		domain.FamilyLandevo,
		domain.FamilyTeslerr,
		domain.FamilyTreeFiddy,
		domain.FamilyGojira,
	} {
		out = append(out, registry[f])
	}
	return out
}
