package domain

import (
	"github.com/bitwhips/washapi/base/ctx"
)

// ContentStore persists bytes to content-addressed storage and returns a
// durable retrieval URI. Stored objects are immutable; a wash always publishes
// to a new address, never edits in place.
type ContentStore interface {
	Put(c ctx.Ctx, data []byte, contentType string) (string, error)
}
