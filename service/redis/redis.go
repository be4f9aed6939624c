package redis

import (
	"errors"
	"time"

	"github.com/bitwhips/washapi/base/ctx"
)

const (
	// Forever means the key has no associated expire
	Forever time.Duration = -1
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("redis: not found")

	// ErrGapTime is returned when no pool is available to serve the command
	ErrGapTime = errors.New("redis: in gap time, no pool available")
)

// Service accesses a redis cluster
type Service interface {
	// Get returns the value of key, ErrNotFound if the key does not exist
	Get(c ctx.Ctx, key string) ([]byte, error)

	// Set sets key to val with the given expire. Use Forever to skip the TTL.
	Set(c ctx.Ctx, key string, val []byte, expire time.Duration) error

	// SetNX sets key to val only if the key does not exist. It reports
	// whether the key was set.
	SetNX(c ctx.Ctx, key string, val []byte, expire time.Duration) (bool, error)

	// Del removes the given keys and returns the number of keys removed
	Del(c ctx.Ctx, ks ...string) (int, error)
}
