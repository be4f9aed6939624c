package domain

import "strings"

// Table is a mongo collection name
type Table string

const (
	TableWashCount         Table = "carwash_count"
	TableLandevoMetadata   Table = "landevo_metadata"
	TableTeslerrMetadata   Table = "teslerr_metadata"
	TableTreeFiddyMetadata Table = "treefiddy_metadata"
	TableGojiraMetadata    Table = "gojira_metadata"
)

// CollectionFamily tags one generative collection. Every family-scoped lookup
// (trait table, layer namespace, metadata cache table) must be selected by the
// same tag for a given token.
type CollectionFamily string

const (
	FamilyLandevo   CollectionFamily = "landevo"
	FamilyTeslerr   CollectionFamily = "teslerr"
	FamilyTreeFiddy CollectionFamily = "treefiddy"
	FamilyGojira    CollectionFamily = "gojira"
)

func ToCollectionFamily(s string) (CollectionFamily, error) {
	switch CollectionFamily(strings.ToLower(s)) {
	case FamilyLandevo:
		return FamilyLandevo, nil
	case FamilyTeslerr:
		return FamilyTeslerr, nil
	case FamilyTreeFiddy:
		return FamilyTreeFiddy, nil
	case FamilyGojira:
		return FamilyGojira, nil
	}
	return "", ErrInvalidCollectionFamily
}

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)
