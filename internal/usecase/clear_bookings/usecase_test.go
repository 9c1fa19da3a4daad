package clear_bookings

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGrid хранит занятые слоты по имени участника
type fakeGrid struct {
	bookings map[string]int
	cleared  []string
}

func newFakeGrid() *fakeGrid {
	return &fakeGrid{bookings: make(map[string]int)}
}

func (f *fakeGrid) ClearForMember(_ context.Context, memberName string) (bool, error) {
	f.cleared = append(f.cleared, memberName)
	count, ok := f.bookings[memberName]
	if !ok || count == 0 {
		return false, nil
	}
	delete(f.bookings, memberName)
	return true, nil
}

// fakeTxManager выполняет функцию без настоящей транзакции
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_ClearsAllBookings(t *testing.T) {
	grid := newFakeGrid()
	grid.bookings["Alice"] = 6
	grid.bookings["Bob"] = 3

	uc := NewUseCase(grid, fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), &Request{MemberName: "Alice"})

	require.NoError(t, err)
	assert.NotContains(t, grid.bookings, "Alice")
	assert.Equal(t, 3, grid.bookings["Bob"], "other members' bookings stay untouched")
}

func TestExecute_NoBookingsFound(t *testing.T) {
	grid := newFakeGrid()
	uc := NewUseCase(grid, fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), &Request{MemberName: "Nobody"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoBookingsFound))
}

func TestExecute_MemberNameTrimmed(t *testing.T) {
	grid := newFakeGrid()
	grid.bookings["Alice"] = 2

	uc := NewUseCase(grid, fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), &Request{MemberName: "  Alice  "})

	require.NoError(t, err)
	require.Len(t, grid.cleared, 1)
	assert.Equal(t, "Alice", grid.cleared[0])
}

func TestExecute_Validation(t *testing.T) {
	grid := newFakeGrid()
	uc := NewUseCase(grid, fakeTxManager{}, nopLogger{})

	tests := []struct {
		name       string
		memberName string
	}{
		{"empty name", ""},
		{"whitespace only", "   "},
		{"too long", strings.Repeat("x", 101)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := uc.Execute(context.Background(), &Request{MemberName: tt.memberName})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
		})
	}

	assert.Empty(t, grid.cleared, "invalid requests must not reach the grid")
}
