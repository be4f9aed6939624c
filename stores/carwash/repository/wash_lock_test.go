package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/bitwhips/washapi/base/ctx"
	"github.com/bitwhips/washapi/domain"
	"github.com/bitwhips/washapi/domain/keys"
	mockRedis "github.com/bitwhips/washapi/service/redis/mocks"
)

type washLockSuite struct {
	suite.Suite

	redis *mockRedis.Service
	im    *washLockRepo
}

func (s *washLockSuite) SetupTest() {
	s.redis = &mockRedis.Service{}
	s.im = NewWashLockRepo(s.redis, time.Minute).(*washLockRepo)
}

func TestWashLockSuite(t *testing.T) {
	suite.Run(t, new(washLockSuite))
}

func (s *washLockSuite) TestAcquire() {
	ctx := bCtx.Background()
	key := keys.RedisKey(keys.PfxWashLock, "Mint123")

	s.redis.On("SetNX", ctx, key, mock.Anything, time.Minute).Return(true, nil).Once()

	token, err := s.im.Acquire(ctx, "Mint123")
	s.NoError(err)
	s.NotEmpty(token)
}

func (s *washLockSuite) TestAcquireHeldMint() {
	ctx := bCtx.Background()
	key := keys.RedisKey(keys.PfxWashLock, "Mint123")

	s.redis.On("SetNX", ctx, key, mock.Anything, time.Minute).Return(false, nil).Once()

	_, err := s.im.Acquire(ctx, "Mint123")
	s.Equal(domain.ErrWashInProgress, err)
}

func (s *washLockSuite) TestReleaseOnlyOwnLease() {
	ctx := bCtx.Background()
	key := keys.RedisKey(keys.PfxWashLock, "Mint123")

	// holder matches, lease removed
	s.redis.On("Get", ctx, key).Return([]byte("token-a"), nil).Once()
	s.redis.On("Del", ctx, key).Return(1, nil).Once()
	s.NoError(s.im.Release(ctx, "Mint123", "token-a"))

	// lease now owned by someone else, Del must not happen
	s.redis.On("Get", ctx, key).Return([]byte("token-b"), nil).Once()
	s.NoError(s.im.Release(ctx, "Mint123", "token-a"))

	s.redis.AssertExpectations(s.T())
}
