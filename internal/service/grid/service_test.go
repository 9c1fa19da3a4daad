package grid

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TimeslotsService/internal/domain"
)

// fakeSlotRepository in-memory репозиторий для тестов сервиса
type fakeSlotRepository struct {
	slots map[[3]int]domain.Slot
}

func newFakeSlotRepository() *fakeSlotRepository {
	return &fakeSlotRepository{slots: make(map[[3]int]domain.Slot)}
}

func (f *fakeSlotRepository) Count(_ context.Context, weekIdx int) (int, error) {
	count := 0
	for key := range f.slots {
		if key[0] == weekIdx {
			count++
		}
	}
	return count, nil
}

func (f *fakeSlotRepository) LoadAll(_ context.Context, weekIdx int) ([]domain.Slot, error) {
	result := make([]domain.Slot, 0, len(f.slots))
	for key, slot := range f.slots {
		if key[0] == weekIdx {
			result = append(result, slot)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].DayIndex != result[j].DayIndex {
			return result[i].DayIndex < result[j].DayIndex
		}
		return result[i].SlotIndex < result[j].SlotIndex
	})
	return result, nil
}

func (f *fakeSlotRepository) GetRange(_ context.Context, weekIdx, dayIdx, fromIdx, toIdx int) ([]domain.Slot, error) {
	result := make([]domain.Slot, 0, toIdx-fromIdx)
	for idx := fromIdx; idx < toIdx; idx++ {
		if slot, ok := f.slots[[3]int{weekIdx, dayIdx, idx}]; ok {
			result = append(result, slot)
		}
	}
	return result, nil
}

func (f *fakeSlotRepository) UpdateRange(_ context.Context, weekIdx, dayIdx, fromIdx, toIdx int, memberName *string, chargeTime *bool) (int64, error) {
	var updated int64
	for idx := fromIdx; idx < toIdx; idx++ {
		key := [3]int{weekIdx, dayIdx, idx}
		slot, ok := f.slots[key]
		if !ok {
			continue
		}
		slot.MemberName = memberName
		slot.ChargeTime = chargeTime
		f.slots[key] = slot
		updated++
	}
	return updated, nil
}

func (f *fakeSlotRepository) ClearMember(_ context.Context, weekIdx int, memberName string) (int64, error) {
	var cleared int64
	for key, slot := range f.slots {
		if key[0] != weekIdx || slot.MemberName == nil || *slot.MemberName != memberName {
			continue
		}
		slot.MemberName = nil
		slot.ChargeTime = nil
		f.slots[key] = slot
		cleared++
	}
	return cleared, nil
}

func (f *fakeSlotRepository) BulkInsert(_ context.Context, slots []domain.Slot) error {
	for _, slot := range slots {
		f.slots[[3]int{slot.WeekIndex, slot.DayIndex, slot.SlotIndex}] = slot
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(t *testing.T) (*Service, *fakeSlotRepository) {
	t.Helper()
	repo := newFakeSlotRepository()
	defs := domain.GenerateSlotDefs(domain.OpenHour, domain.CloseHour, domain.SlotLengthHours)
	svc := NewService(repo, defs, nopLogger{})
	require.NoError(t, svc.Initialize(context.Background()))
	return svc, repo
}

func TestService_Initialize_EmptyStorage(t *testing.T) {
	_, repo := newTestService(t)

	count, err := repo.Count(context.Background(), domain.DefaultWeekIndex)
	require.NoError(t, err)
	assert.Equal(t, domain.DaysPerWeek*domain.SlotsPerDay(), count)

	// Пиковые часы проставлены при создании сетки
	monday, err := repo.GetRange(context.Background(), domain.DefaultWeekIndex, 1, 0, domain.SlotsPerDay())
	require.NoError(t, err)
	for _, slot := range monday {
		want := domain.IsPeakTime(1, domain.OpenHour+float64(slot.SlotIndex)*domain.SlotLengthHours)
		assert.Equal(t, want, slot.PeakTime, "slot %d", slot.SlotIndex)
	}
}

func TestService_Initialize_Idempotent(t *testing.T) {
	svc, _ := newTestService(t)

	// Повторный запуск поверх полной сетки не трогает данные
	require.NoError(t, svc.Initialize(context.Background()))
}

func TestService_Initialize_CorruptedStorage(t *testing.T) {
	repo := newFakeSlotRepository()
	require.NoError(t, repo.BulkInsert(context.Background(), []domain.Slot{
		{WeekIndex: domain.DefaultWeekIndex, DayIndex: 0, SlotIndex: 0},
		{WeekIndex: domain.DefaultWeekIndex, DayIndex: 0, SlotIndex: 1},
	}))

	defs := domain.GenerateSlotDefs(domain.OpenHour, domain.CloseHour, domain.SlotLengthHours)
	svc := NewService(repo, defs, nopLogger{})

	err := svc.Initialize(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGridCorrupted))
}

func TestService_GetSlotSequence(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	t.Run("full sequence", func(t *testing.T) {
		seq, err := svc.GetSlotSequence(ctx, 0, 10, 3)
		require.NoError(t, err)
		require.Len(t, seq, 3)
		assert.Equal(t, 10, seq[0].SlotIndex)
		assert.Equal(t, 12, seq[2].SlotIndex)
	})

	t.Run("clipped at end of day", func(t *testing.T) {
		last := domain.SlotsPerDay() - 1
		seq, err := svc.GetSlotSequence(ctx, 0, last, 6)
		require.NoError(t, err)
		assert.Len(t, seq, 1)
	})

	t.Run("start outside the day", func(t *testing.T) {
		seq, err := svc.GetSlotSequence(ctx, 0, domain.SlotsPerDay(), 3)
		require.NoError(t, err)
		assert.Empty(t, seq)
	})

	t.Run("invalid day", func(t *testing.T) {
		_, err := svc.GetSlotSequence(ctx, 7, 0, 3)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidDay))
	})
}

func TestService_ApplyBooking(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.ApplyBooking(ctx, 0, 5, 2, 4, "Alice"))

	seq, err := svc.GetSlotSequence(ctx, 0, 5, 6)
	require.NoError(t, err)
	require.Len(t, seq, 6)

	for i := 0; i < 2; i++ {
		require.NotNil(t, seq[i].MemberName)
		assert.Equal(t, "Alice", *seq[i].MemberName)
		assert.False(t, seq[i].IsCharging(), "use slot %d must not be marked charging", i)
	}
	for i := 2; i < 6; i++ {
		require.NotNil(t, seq[i].MemberName)
		assert.Equal(t, "Alice", *seq[i].MemberName)
		assert.True(t, seq[i].IsCharging(), "charge slot %d must be marked charging", i)
	}
}

func TestService_ApplyBooking_ChargeClippedAtClosing(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// Использование в последнем слоте дня: зарядка продолжается после
	// закрытия и не попадает в сетку
	last := domain.SlotsPerDay() - 1
	require.NoError(t, svc.ApplyBooking(ctx, 2, last, 1, 2, "Bob"))

	seq, err := svc.GetSlotSequence(ctx, 2, last, 1)
	require.NoError(t, err)
	require.Len(t, seq, 1)
	require.NotNil(t, seq[0].MemberName)
	assert.Equal(t, "Bob", *seq[0].MemberName)
	assert.False(t, seq[0].IsCharging())
}

func TestService_ClearForMember(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.ApplyBooking(ctx, 0, 5, 1, 2, "Alice"))
	require.NoError(t, svc.ApplyBooking(ctx, 3, 0, 2, 4, "Alice"))

	found, err := svc.ClearForMember(ctx, "Alice")
	require.NoError(t, err)
	assert.True(t, found)

	for _, check := range [][2]int{{0, 5}, {0, 6}, {0, 7}, {3, 0}, {3, 5}} {
		seq, err := svc.GetSlotSequence(ctx, check[0], check[1], 1)
		require.NoError(t, err)
		require.Len(t, seq, 1)
		assert.Nil(t, seq[0].MemberName)
		assert.Nil(t, seq[0].ChargeTime)
	}

	found, err = svc.ClearForMember(ctx, "Alice")
	require.NoError(t, err)
	assert.False(t, found, "second clear finds nothing")
}
