package domain

import "fmt"

// DisplayBlock is a run of adjacent slots with identical display-relevant
// state, merged into a single visual block for compact sheet rendering.
type DisplayBlock struct {
	SlotIndex  int // index of the first merged slot within the day
	Height     int // number of merged slots, for proportional rendering
	PeakTime   bool
	ChargeTime bool
	MemberName *string

	// Availability flags, computed from the first merged slot
	IsAvailableForUse      bool
	IsAvailableForCharging bool

	// CSS class derived from the block height
	DisplayClass string
}

// NewDisplayBlock starts a block from its first slot
func NewDisplayBlock(slot Slot) DisplayBlock {
	return DisplayBlock{
		SlotIndex:              slot.SlotIndex,
		Height:                 1,
		PeakTime:               slot.PeakTime,
		ChargeTime:             slot.IsCharging(),
		MemberName:             slot.MemberName,
		IsAvailableForUse:      slot.IsAvailableForUse(),
		IsAvailableForCharging: slot.IsAvailableForCharging(),
		DisplayClass:           DisplayClassForHeight(1),
	}
}

// Grow extends the block by one merged slot
func (b *DisplayBlock) Grow() {
	b.Height++
	b.DisplayClass = DisplayClassForHeight(b.Height)
}

// DisplayClassForHeight derives the CSS class used to size a rendered block
func DisplayClassForHeight(height int) string {
	return fmt.Sprintf("slot-h%d", height)
}

// Groupable reports whether two adjacent slots belong in the same display
// block. Peak slots always merge with each other, regardless of who holds
// them. Outside peak hours, two slots merge only when the same member holds
// both with the same charging pattern. Free slots never merge: each one stays
// individually selectable on the sheet. A peak/non-peak boundary always starts
// a new block.
func Groupable(a, b *Slot) bool {
	if a.PeakTime || b.PeakTime {
		return a.PeakTime && b.PeakTime
	}
	if !a.IsBooked() || !b.IsBooked() {
		return false
	}
	return *a.MemberName == *b.MemberName && a.IsCharging() == b.IsCharging()
}
