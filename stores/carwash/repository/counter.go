package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/bitwhips/washapi/base/ctx"
	"github.com/bitwhips/washapi/domain"
	"github.com/bitwhips/washapi/domain/carwash"
	"github.com/bitwhips/washapi/service/query"
)

// counterName identifies the single wash counter document
const counterName = "carwash"

type counterDoc struct {
	Name   string `json:"name" bson:"name"`
	Amount int    `json:"amount" bson:"amount"`
}

type counterRepo struct {
	q query.Mongo
}

func NewCounterRepo(q query.Mongo) carwash.CounterRepo {
	return &counterRepo{q}
}

// Increment bumps the counter in a single findAndModify so concurrent washes
// can never observe the same ticket number.
func (r *counterRepo) Increment(ctx bCtx.Ctx) (int, error) {
	doc := counterDoc{}
	qry := bson.M{"name": counterName}
	if err := r.q.Increment(ctx, domain.TableWashCount, qry, &doc, "amount", 1); err != nil {
		ctx.WithField("err", err).Error("q.Increment failed")
		return 0, err
	}
	return doc.Amount, nil
}

func (r *counterRepo) Get(ctx bCtx.Ctx) (int, error) {
	doc := counterDoc{}
	qry := bson.M{"name": counterName}
	err := r.q.FindOne(ctx, domain.TableWashCount, qry, &doc)
	if err == query.ErrNotFound {
		return 0, nil
	} else if err != nil {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return 0, err
	}
	return doc.Amount, nil
}
