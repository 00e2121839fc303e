package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/amap-gateway/internal/domain"
	"github.com/amap-gateway/internal/domain/repository"
	"github.com/amap-gateway/internal/repository/postgres/testhelpers"
)

// JournalRepositoryTestSuite тестирует JournalRepository на реальной БД
type JournalRepositoryTestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.JournalRepository
	ctx    context.Context
}

func (s *JournalRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())
	s.ctx = context.Background()

	db := testhelpers.NewDBForTest(s.testDB.DB, s.testDB.Logger)
	s.Require().NoError(db.EnsureSchema(s.ctx))

	s.repo = testhelpers.NewJournalRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

func (s *JournalRepositoryTestSuite) SetupTest() {
	s.Require().NoError(s.testDB.Cleanup(s.ctx))
}

func (s *JournalRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *JournalRepositoryTestSuite) TestRecordAndRecent() {
	first := &domain.UpstreamCall{
		Operation:  "geo",
		Format:     "json",
		Params:     []string{"address", "city"},
		Status:     domain.CallStatusOK,
		InfoCode:   "10000",
		DurationMS: 42,
		CreatedAt:  time.Now().Add(-time.Minute).UTC(),
	}
	second := &domain.UpstreamCall{
		Operation: "weather",
		Format:    "xml",
		Status:    domain.CallStatusFailed,
		ErrorCode: "REQUEST_FAILED",
		Signed:    true,
	}

	s.Require().NoError(s.repo.Record(s.ctx, first))
	s.Require().NoError(s.repo.Record(s.ctx, second))
	s.NotEqual(uuid.Nil, first.ID)

	calls, err := s.repo.Recent(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(calls, 2)

	s.Equal("weather", calls[0].Operation)
	s.True(calls[0].Signed)
	s.Empty(calls[0].Params)
	s.Equal("geo", calls[1].Operation)
	s.Equal([]string{"address", "city"}, calls[1].Params)
	s.Equal(int64(42), calls[1].DurationMS)
}

func (s *JournalRepositoryTestSuite) TestUsageSince() {
	since := time.Now().Add(-time.Hour).UTC()

	for _, status := range []string{domain.CallStatusOK, domain.CallStatusOK, domain.CallStatusRejected} {
		s.Require().NoError(s.repo.Record(s.ctx, &domain.UpstreamCall{
			Operation: "regeo",
			Format:    "json",
			Status:    status,
		}))
	}
	s.Require().NoError(s.repo.Record(s.ctx, &domain.UpstreamCall{
		Operation: "geo",
		Format:    "json",
		Status:    domain.CallStatusOK,
		CreatedAt: since.Add(-time.Hour),
	}))

	usage, err := s.repo.UsageSince(s.ctx, since)
	s.Require().NoError(err)
	s.Require().Len(usage, 1)
	s.Equal("regeo", usage[0].Operation)
	s.Equal(int64(3), usage[0].Total)
	s.Equal(int64(1), usage[0].Failed)
}

func TestJournalRepository(t *testing.T) {
	suite.Run(t, new(JournalRepositoryTestSuite))
}
