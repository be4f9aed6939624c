package repository

import (
	"time"

	"github.com/google/uuid"

	bCtx "github.com/bitwhips/washapi/base/ctx"
	"github.com/bitwhips/washapi/base/log"
	"github.com/bitwhips/washapi/domain"
	"github.com/bitwhips/washapi/domain/carwash"
	"github.com/bitwhips/washapi/domain/keys"
	"github.com/bitwhips/washapi/service/redis"
)

type washLockRepo struct {
	redis redis.Service
	ttl   time.Duration
}

// NewWashLockRepo provides per-mint leases over redis. The ttl bounds how
// long a crashed wash can keep its mint unavailable.
func NewWashLockRepo(redis redis.Service, ttl time.Duration) carwash.LockRepo {
	return &washLockRepo{redis, ttl}
}

func (r *washLockRepo) Acquire(ctx bCtx.Ctx, mint string) (string, error) {
	token := uuid.New().String()
	key := keys.RedisKey(keys.PfxWashLock, mint)

	ok, err := r.redis.SetNX(ctx, key, []byte(token), r.ttl)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"mint": mint,
		}).Error("redis.SetNX failed")
		return "", err
	}
	if !ok {
		return "", domain.ErrWashInProgress
	}
	return token, nil
}

// Release drops the lease only while we still hold it. The read-then-del is
// not atomic; if the lease expired and another wash acquired the mint in the
// gap, the holder check keeps us from dropping theirs.
func (r *washLockRepo) Release(ctx bCtx.Ctx, mint, token string) error {
	key := keys.RedisKey(keys.PfxWashLock, mint)

	val, err := r.redis.Get(ctx, key)
	if err == redis.ErrNotFound {
		return nil
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"mint": mint,
		}).Error("redis.Get failed")
		return err
	}
	if string(val) != token {
		return nil
	}

	if _, err := r.redis.Del(ctx, key); err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"mint": mint,
		}).Error("redis.Del failed")
		return err
	}
	return nil
}
