package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/amap-gateway/internal/domain"
	"github.com/amap-gateway/internal/infrastructure/amap"
)

// MockAmapRepository is a mock of AmapRepository
type MockAmapRepository struct {
	mock.Mock
}

func (m *MockAmapRepository) Call(ctx context.Context, operation string, params amap.Params, format amap.Format) (*amap.Response, error) {
	args := m.Called(ctx, operation, params, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*amap.Response), args.Error(1)
}

func (m *MockAmapRepository) Geo(ctx context.Context, address, city string, format amap.Format) (*amap.Response, error) {
	args := m.Called(ctx, address, city, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*amap.Response), args.Error(1)
}

func (m *MockAmapRepository) Regeo(ctx context.Context, p amap.RegeoParams, extensions string, format amap.Format) (*amap.Response, error) {
	args := m.Called(ctx, p, extensions, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*amap.Response), args.Error(1)
}

func (m *MockAmapRepository) Weather(ctx context.Context, city, extensions string, format amap.Format) (*amap.Response, error) {
	args := m.Called(ctx, city, extensions, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*amap.Response), args.Error(1)
}

func (m *MockAmapRepository) Signing() bool {
	args := m.Called()
	return args.Bool(0)
}

// MockJournalRepository is a mock of JournalRepository
type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) Record(ctx context.Context, call *domain.UpstreamCall) error {
	args := m.Called(ctx, call)
	return args.Error(0)
}

func (m *MockJournalRepository) Recent(ctx context.Context, limit int) ([]domain.UpstreamCall, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UpstreamCall), args.Error(1)
}

func (m *MockJournalRepository) UsageSince(ctx context.Context, since time.Time) ([]domain.OperationUsage, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OperationUsage), args.Error(1)
}

// jsonResponse строит ответ AMap с разобранным JSON
func jsonResponse(data map[string]interface{}) *amap.Response {
	return &amap.Response{
		Format:     amap.FormatJSON,
		StatusCode: 200,
		Data:       data,
	}
}
