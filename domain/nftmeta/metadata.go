package nftmeta

// TraitAttribute is one entry of a token's attribute list. Attribute lists are
// never mutated in place; rewrites always build a new list.
type TraitAttribute struct {
	TraitType string `json:"trait_type" bson:"trait_type"`
	Value     string `json:"value" bson:"value"`
}

// WashedTraitType marks a token as washed. Its presence anywhere in the
// attribute list makes the token ineligible for another wash.
const WashedTraitType = "Washed"

type Collection struct {
	Name   string `json:"name" bson:"name"`
	Family string `json:"family" bson:"family"`
}

type File struct {
	Uri  string `json:"uri" bson:"uri"`
	Type string `json:"type" bson:"type"`
}

type Creator struct {
	Address string `json:"address" bson:"address"`
	Share   int    `json:"share" bson:"share"`
}

type Properties struct {
	Files    []File    `json:"files" bson:"files"`
	Category string    `json:"category" bson:"category"`
	Creators []Creator `json:"creators" bson:"creators"`
}

// Metadata is the off-chain json a token's on-chain pointer references.
// Mint is a transient scratch field attached while a token is being processed;
// it is not part of the canonical schema and must be stripped before the
// object is published.
type Metadata struct {
	Name                 string           `json:"name" bson:"name"`
	Symbol               string           `json:"symbol" bson:"symbol"`
	Description          string           `json:"description" bson:"description"`
	SellerFeeBasisPoints int              `json:"seller_fee_basis_points" bson:"seller_fee_basis_points"`
	Image                string           `json:"image" bson:"image"`
	Edition              int              `json:"edition,omitempty" bson:"edition,omitempty"`
	ExternalUrl          string           `json:"external_url" bson:"external_url"`
	Attributes           []TraitAttribute `json:"attributes" bson:"attributes"`
	Collection           Collection       `json:"collection" bson:"collection"`
	Properties           Properties       `json:"properties" bson:"properties"`
	Mint                 string           `json:"mint,omitempty" bson:"mint,omitempty"`
}

// IsWashed reports whether the attribute list already carries the washed
// marker.
func (m *Metadata) IsWashed() bool {
	for _, attr := range m.Attributes {
		if attr.TraitType == WashedTraitType {
			return true
		}
	}
	return false
}

// Copy returns a deep copy. Rewrite operates on copies so callers can rely on
// their input never being mutated.
func (m *Metadata) Copy() *Metadata {
	out := *m
	out.Attributes = make([]TraitAttribute, len(m.Attributes))
	copy(out.Attributes, m.Attributes)
	out.Properties.Files = make([]File, len(m.Properties.Files))
	copy(out.Properties.Files, m.Properties.Files)
	out.Properties.Creators = make([]Creator, len(m.Properties.Creators))
	copy(out.Properties.Creators, m.Properties.Creators)
	return &out
}
