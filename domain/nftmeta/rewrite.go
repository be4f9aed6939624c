package nftmeta

import "fmt"

// Rewrite builds the metadata to publish after a wash. The new attribute list
// is the resolved attributes in their original order followed by the washed
// ticket attribute. Image and the first file uri both point at the new image,
// and the transient mint field is stripped. Pure function: the input is never
// mutated and no I/O happens here.
func Rewrite(original *Metadata, resolved []TraitAttribute, newImageUri string, washTicket int) *Metadata {
	out := original.Copy()

	attributes := make([]TraitAttribute, 0, len(resolved)+1)
	attributes = append(attributes, resolved...)
	attributes = append(attributes, TraitAttribute{
		TraitType: WashedTraitType,
		Value:     fmt.Sprintf("Ticket Number: %d", washTicket),
	})
	out.Attributes = attributes

	out.Image = newImageUri
	if len(out.Properties.Files) > 0 {
		out.Properties.Files[0].Uri = newImageUri
	}
	out.Mint = ""
	return out
}
