package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TimeslotsService/pkg/ptr"
)

func freeSlot(idx int) Slot {
	return Slot{SlotIndex: idx}
}

func peakSlot(idx int) Slot {
	return Slot{SlotIndex: idx, PeakTime: true}
}

func bookedSlot(idx int, member string, charging bool) Slot {
	s := Slot{SlotIndex: idx, MemberName: ptr.Ptr(member)}
	if charging {
		s.ChargeTime = ptr.Ptr(true)
	}
	return s
}

func TestSlot_Predicates(t *testing.T) {
	free := freeSlot(0)
	assert.False(t, free.IsBooked())
	assert.False(t, free.IsCharging())
	assert.True(t, free.IsAvailableForUse())
	assert.True(t, free.IsAvailableForCharging())

	peak := peakSlot(0)
	assert.False(t, peak.IsAvailableForUse(), "peak slot cannot be used")
	assert.True(t, peak.IsAvailableForCharging(), "peak slot can still charge")

	used := bookedSlot(0, "Alice", false)
	assert.True(t, used.IsBooked())
	assert.False(t, used.IsCharging())
	assert.False(t, used.IsAvailableForUse())
	assert.False(t, used.IsAvailableForCharging())

	charging := bookedSlot(0, "Alice", true)
	assert.True(t, charging.IsBooked())
	assert.True(t, charging.IsCharging())
	assert.False(t, charging.IsAvailableForUse())
	assert.False(t, charging.IsAvailableForCharging())
}

func TestGroupable(t *testing.T) {
	tests := []struct {
		name string
		a, b Slot
		want bool
	}{
		{"two peak slots merge", peakSlot(0), peakSlot(1), true},
		{"peak and non-peak never merge", peakSlot(0), freeSlot(1), false},
		{"non-peak and peak never merge", freeSlot(0), peakSlot(1), false},
		{"booked peak slots still merge", bookedPeak(0, "Alice"), peakSlot(1), true},
		{"free slots stay separate", freeSlot(0), freeSlot(1), false},
		{"free and booked stay separate", freeSlot(0), bookedSlot(1, "Alice", false), false},
		{"same member same pattern merge", bookedSlot(0, "Alice", false), bookedSlot(1, "Alice", false), true},
		{"same member charging run merges", bookedSlot(0, "Alice", true), bookedSlot(1, "Alice", true), true},
		{"same member use/charge boundary splits", bookedSlot(0, "Alice", false), bookedSlot(1, "Alice", true), false},
		{"different members stay separate", bookedSlot(0, "Alice", false), bookedSlot(1, "Bob", false), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Groupable(&tt.a, &tt.b))
		})
	}
}

func bookedPeak(idx int, member string) Slot {
	s := bookedSlot(idx, member, true)
	s.PeakTime = true
	return s
}

func TestDisplayBlock_Grow(t *testing.T) {
	block := NewDisplayBlock(bookedSlot(4, "Alice", false))

	assert.Equal(t, 4, block.SlotIndex)
	assert.Equal(t, 1, block.Height)
	assert.Equal(t, "slot-h1", block.DisplayClass)
	assert.False(t, block.IsAvailableForUse)
	assert.False(t, block.IsAvailableForCharging)

	block.Grow()
	block.Grow()

	assert.Equal(t, 3, block.Height)
	assert.Equal(t, "slot-h3", block.DisplayClass)
	assert.Equal(t, 4, block.SlotIndex, "growing must not move the block start")
}

func TestNewDisplayBlock_AvailabilityFlags(t *testing.T) {
	free := NewDisplayBlock(freeSlot(0))
	assert.True(t, free.IsAvailableForUse)
	assert.True(t, free.IsAvailableForCharging)
	assert.Nil(t, free.MemberName)

	peak := NewDisplayBlock(peakSlot(0))
	assert.True(t, peak.PeakTime)
	assert.False(t, peak.IsAvailableForUse)
	assert.True(t, peak.IsAvailableForCharging)

	charging := NewDisplayBlock(bookedSlot(0, "Bob", true))
	assert.True(t, charging.ChargeTime)
	assert.Equal(t, "Bob", *charging.MemberName)
	assert.False(t, charging.IsAvailableForCharging)
}
