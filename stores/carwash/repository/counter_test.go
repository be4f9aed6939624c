package repository

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/bitwhips/washapi/base/ctx"
	"github.com/bitwhips/washapi/domain"
	"github.com/bitwhips/washapi/service/query"
	mockQuery "github.com/bitwhips/washapi/service/query/mocks"
)

type counterSuite struct {
	suite.Suite

	q  *mockQuery.Mongo
	im *counterRepo
}

func (s *counterSuite) SetupTest() {
	s.q = &mockQuery.Mongo{}
	s.im = NewCounterRepo(s.q).(*counterRepo)
}

func TestCounterSuite(t *testing.T) {
	suite.Run(t, new(counterSuite))
}

func (s *counterSuite) TestIncrement() {
	ctx := bCtx.Background()
	qry := bson.M{"name": counterName}

	s.q.On("Increment", ctx, domain.TableWashCount, qry, mock.Anything, "amount", 1).
		Run(func(args mock.Arguments) {
			doc := args.Get(3).(*counterDoc)
			doc.Name = counterName
			doc.Amount = 42
		}).Return(nil).Once()

	n, err := s.im.Increment(ctx)
	s.NoError(err)
	s.Equal(42, n)
}

func (s *counterSuite) TestIncrementConcurrentTicketsAreUnique() {
	ctx := bCtx.Background()
	qry := bson.M{"name": counterName}

	// the fake mirrors findAndModify: the read-modify-write is a single
	// atomic step on the server
	var mu sync.Mutex
	current := 0
	s.q.On("Increment", ctx, domain.TableWashCount, qry, mock.Anything, "amount", 1).
		Run(func(args mock.Arguments) {
			mu.Lock()
			current++
			args.Get(3).(*counterDoc).Amount = current
			mu.Unlock()
		}).Return(nil)

	const n = 32
	tickets := make(chan int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ticket, err := s.im.Increment(ctx)
			s.NoError(err)
			tickets <- ticket
		}()
	}
	wg.Wait()
	close(tickets)

	seen := map[int]bool{}
	for ticket := range tickets {
		s.False(seen[ticket], "ticket %d issued twice", ticket)
		seen[ticket] = true
	}
	for ticket := 1; ticket <= n; ticket++ {
		s.True(seen[ticket], "ticket %d never issued", ticket)
	}
}

func (s *counterSuite) TestGetMissingCounterIsZero() {
	ctx := bCtx.Background()
	qry := bson.M{"name": counterName}

	s.q.On("FindOne", ctx, domain.TableWashCount, qry, mock.Anything).
		Return(query.ErrNotFound).Once()

	n, err := s.im.Get(ctx)
	s.NoError(err)
	s.Equal(0, n)
}

func (s *counterSuite) TestGet() {
	ctx := bCtx.Background()
	qry := bson.M{"name": counterName}

	s.q.On("FindOne", ctx, domain.TableWashCount, qry, mock.Anything).
		Run(func(args mock.Arguments) {
			doc := args.Get(3).(*counterDoc)
			doc.Amount = 7
		}).Return(nil).Once()

	n, err := s.im.Get(ctx)
	s.NoError(err)
	s.Equal(7, n)
}
