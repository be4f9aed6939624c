package traits

import (
	"github.com/bitwhips/washapi/base/ctx"
	"github.com/bitwhips/washapi/base/log"
)

// Entry maps one canonical clean trait value to the dirty variants that
// resolve to it. Dirty sets of different entries within a category must be
// disjoint; that is a data-authoring invariant checked by tests over the
// static tables, not a runtime branch.
type Entry struct {
	Clean string
	Dirty []string
}

// Category is an ordered list of entries for one trait_type. Order is the
// table declaration order and makes first-match-wins deterministic should a
// malformed table ever carry a duplicated dirty value.
type Category struct {
	Name    string
	Entries []Entry
}

// Table is the dirty-to-clean resolution table of one collection family.
type Table struct {
	Categories []Category
}

func (t *Table) category(name string) *Category {
	for i := range t.Categories {
		if t.Categories[i].Name == name {
			return &t.Categories[i]
		}
	}
	return nil
}

// Resolve maps a trait value to its clean counterpart. Unknown categories and
// values not present in any dirty set pass through unchanged: the value is
// already clean or the category is unmanaged. Resolving is idempotent.
func (t *Table) Resolve(c ctx.Ctx, category, value string) string {
	cat := t.category(category)
	if cat == nil {
		return value
	}
	resolved := ""
	for _, entry := range cat.Entries {
		for _, dirty := range entry.Dirty {
			if dirty != value {
				continue
			}
			if resolved != "" {
				c.WithFields(log.Fields{
					"category": category,
					"value":    value,
					"first":    resolved,
					"also":     entry.Clean,
				}).Warn("dirty value appears under multiple clean keys, keeping first match")
				return resolved
			}
			resolved = entry.Clean
		}
	}
	if resolved == "" {
		return value
	}
	return resolved
}
