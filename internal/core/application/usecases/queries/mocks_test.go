package queries_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type mockIssuedInvoiceCache struct {
	mock.Mock
}

func (m *mockIssuedInvoiceCache) Get(ctx context.Context, day time.Time) ([]string, int64, bool, error) {
	args := m.Called(ctx, day)
	numbers, _ := args.Get(0).([]string)
	gen, _ := args.Get(1).(int64)
	return numbers, gen, args.Bool(2), args.Error(3)
}

func (m *mockIssuedInvoiceCache) Set(ctx context.Context, day time.Time, gen int64, numbers []string) (bool, error) {
	args := m.Called(ctx, day, gen, numbers)
	return args.Bool(0), args.Error(1)
}

func (m *mockIssuedInvoiceCache) Invalidate(ctx context.Context, day time.Time) error {
	args := m.Called(ctx, day)
	return args.Error(0)
}

type mockIssuedNumbersReader struct {
	mock.Mock
}

func (m *mockIssuedNumbersReader) ListNumbersByDate(ctx context.Context, day time.Time) ([]string, error) {
	args := m.Called(ctx, day)
	numbers, _ := args.Get(0).([]string)
	return numbers, args.Error(1)
}
