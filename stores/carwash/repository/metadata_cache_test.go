package repository

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/bitwhips/washapi/base/ctx"
	"github.com/bitwhips/washapi/domain"
	"github.com/bitwhips/washapi/domain/nftmeta"
	"github.com/bitwhips/washapi/service/query"
	mockQuery "github.com/bitwhips/washapi/service/query/mocks"
)

type metadataCacheSuite struct {
	suite.Suite

	q  *mockQuery.Mongo
	im *metadataCacheRepo
}

func (s *metadataCacheSuite) SetupTest() {
	s.q = &mockQuery.Mongo{}
	s.im = NewMetadataCacheRepo(s.q).(*metadataCacheRepo)
}

func TestMetadataCacheSuite(t *testing.T) {
	suite.Run(t, new(metadataCacheSuite))
}

func (s *metadataCacheSuite) TestGet() {
	ctx := bCtx.Background()
	qry := bson.M{"mintAddress": "Mint123"}

	s.q.On("FindOne", ctx, domain.TableLandevoMetadata, qry, mock.Anything).
		Run(func(args mock.Arguments) {
			doc := args.Get(3).(*metadataDoc)
			doc.MintAddress = "Mint123"
			doc.Metadata = &nftmeta.Metadata{Name: "BitWhip #1"}
		}).Return(nil).Once()

	md, err := s.im.Get(ctx, domain.FamilyLandevo, "Mint123")
	s.NoError(err)
	s.Equal("BitWhip #1", md.Name)
	s.Equal("Mint123", md.Mint)
}

func (s *metadataCacheSuite) TestGetNotFound() {
	ctx := bCtx.Background()
	qry := bson.M{"mintAddress": "Mint123"}

	s.q.On("FindOne", ctx, domain.TableGojiraMetadata, qry, mock.Anything).
		Return(query.ErrNotFound).Once()

	_, err := s.im.Get(ctx, domain.FamilyGojira, "Mint123")
	s.Equal(domain.ErrNotFound, err)
}

func (s *metadataCacheSuite) TestGetUnknownFamily() {
	ctx := bCtx.Background()

	_, err := s.im.Get(ctx, domain.CollectionFamily("cybertruck"), "Mint123")
	s.Equal(domain.ErrInvalidCollectionFamily, err)
}

func (s *metadataCacheSuite) TestUpsertStripsTransientMint() {
	ctx := bCtx.Background()
	md := &nftmeta.Metadata{Name: "BitWhip #1", Mint: "Mint123"}

	s.q.On("Upsert", ctx, domain.TableTeslerrMetadata, bson.M{"mintAddress": "Mint123"}, mock.MatchedBy(func(doc metadataDoc) bool {
		return doc.MintAddress == "Mint123" && doc.Metadata.Mint == ""
	})).Return(nil).Once()

	s.NoError(s.im.Upsert(ctx, domain.FamilyTeslerr, "Mint123", md))

	// caller's copy is untouched
	s.Equal("Mint123", md.Mint)
}

func (s *metadataCacheSuite) TestFindByMints() {
	ctx := bCtx.Background()
	mints := []string{"Mint1", "Mint2", "Mint3"}
	qry := bson.M{"mintAddress": bson.M{"$in": mints}}

	s.q.On("Search", ctx, domain.TableTreeFiddyMetadata, 0, 3, "", qry, mock.Anything).
		Run(func(args mock.Arguments) {
			docs := args.Get(6).(*[]metadataDoc)
			*docs = []metadataDoc{
				{MintAddress: "Mint1", Metadata: &nftmeta.Metadata{Name: "Tree Fiddy #1"}},
				{MintAddress: "Mint3", Metadata: &nftmeta.Metadata{Name: "Tree Fiddy #3"}},
			}
		}).Return(nil).Once()

	out, err := s.im.FindByMints(ctx, domain.FamilyTreeFiddy, mints)
	s.NoError(err)
	s.Len(out, 2)
	s.Equal("Mint1", out[0].Mint)
	s.Equal("Tree Fiddy #3", out[1].Name)
}
