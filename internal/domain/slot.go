package domain

// Slot is the mutable booking state of one time slot on one day of the week.
// It is identified by (DayIndex, SlotIndex); WeekIndex is pinned to
// DefaultWeekIndex. PeakTime is derived once at grid initialization and never
// mutated afterwards. MemberName and ChargeTime are set together by the
// booking engine and cleared together by the clearing engine: an unbooked slot
// always has both nil.
type Slot struct {
	WeekIndex  int
	DayIndex   int
	SlotIndex  int
	PeakTime   bool
	MemberName *string
	ChargeTime *bool
}

// IsBooked returns true if a member holds this slot (for use or for charging)
func (s *Slot) IsBooked() bool {
	return s.MemberName != nil
}

// IsCharging returns true if this slot is reserved as post-use charging time
func (s *Slot) IsCharging() bool {
	return s.ChargeTime != nil && *s.ChargeTime
}

// IsAvailableForUse returns true if the machine can be used in this slot:
// nobody holds it and it is outside peak hours
func (s *Slot) IsAvailableForUse() bool {
	return !s.IsBooked() && !s.IsCharging() && !s.PeakTime
}

// IsAvailableForCharging returns true if the machine can be charged in this
// slot. Charging is allowed during peak hours.
func (s *Slot) IsAvailableForCharging() bool {
	return !s.IsBooked() && !s.IsCharging()
}

// DaySlots pairs a day definition with its ordered slot states
type DaySlots struct {
	Day   DayDef
	Slots []Slot
}
