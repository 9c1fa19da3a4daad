package get_sheet

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TimeslotsService/internal/domain"
)

type fakeGrid struct {
	defs []domain.SlotDef
	days []domain.DaySlots
	err  error
}

func (f *fakeGrid) SlotDefs() []domain.SlotDef {
	return f.defs
}

func (f *fakeGrid) GetSlotsByDay(context.Context) ([]domain.DaySlots, error) {
	return f.days, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_BuildsSheet(t *testing.T) {
	grid := &fakeGrid{
		defs: domain.GenerateSlotDefs(9.0, 11.0, 0.5),
		days: []domain.DaySlots{
			{
				Day: domain.DayDef{ID: 0, Name: "Sunday"},
				Slots: []domain.Slot{
					free(0),
					booked(1, "Alice", false),
					booked(2, "Alice", true),
					booked(3, "Alice", true),
				},
			},
			{
				Day:   domain.DayDef{ID: 1, Name: "Monday"},
				Slots: []domain.Slot{peak(0), peak(1), free(2), free(3)},
			},
		},
	}

	uc := NewUseCase(grid, nopLogger{})

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Len(t, resp.SlotDefs, 4)
	require.Len(t, resp.Days, 2)

	sunday := resp.Days[0]
	assert.Equal(t, "Sunday", sunday.Name)
	// Свободный слот, слот использования, зарядочный хвост высотой 2
	require.Len(t, sunday.Blocks, 3)
	assert.Equal(t, 1, sunday.Blocks[0].Height)
	assert.Equal(t, 1, sunday.Blocks[1].Height)
	assert.Equal(t, 2, sunday.Blocks[2].Height)

	monday := resp.Days[1]
	require.Len(t, monday.Blocks, 3)
	assert.True(t, monday.Blocks[0].PeakTime)
	assert.Equal(t, 2, monday.Blocks[0].Height)
}

func TestExecute_GridFailure(t *testing.T) {
	grid := &fakeGrid{err: errors.New("storage down")}
	uc := NewUseCase(grid, nopLogger{})

	_, err := uc.Execute(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInternal))
}
