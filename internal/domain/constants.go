package domain

// Operating window of the machine. The week is partitioned into fixed-width
// slots between opening and closing time, expressed as fractional hours.
const (
	OpenHour        = 6.0  // machine is available from 6 a.m.
	CloseHour       = 23.0 // until 11 p.m.
	SlotLengthHours = 0.5
)

const (
	DaysPerWeek = 7

	// DefaultWeekIndex is the single recurring week the grid operates on.
	// The storage key keeps a week index for compatibility with the legacy
	// multi-week schema, but the value never changes.
	DefaultWeekIndex = 0
)

// Supported signup durations, in hours
const (
	DurationHalfHour = "1/2"
	DurationHour     = "1"
)

// ChargeSlotsPerUseSlot is the mandatory charging time that follows machine
// use: every slot of use reserves two slots of charging.
const ChargeSlotsPerUseSlot = 2

// Business validation constants
const (
	MaxMemberNameLength = 100
)

// Peak-time windows: Monday through Thursday, 9-11 a.m. and 7-9 p.m.
// During peak hours the machine may not be used, but it may be charged.
const (
	peakFirstDay = 1 // Monday
	peakLastDay  = 4 // Thursday

	peakMorningStart = 9.0
	peakMorningEnd   = 11.0
	peakEveningStart = 19.0
	peakEveningEnd   = 21.0
)

// IsPeakTime reports whether a slot starting at the given fractional hour on
// the given day falls within a peak window.
func IsPeakTime(dayIndex int, time float64) bool {
	if dayIndex < peakFirstDay || dayIndex > peakLastDay {
		return false
	}
	return (time >= peakMorningStart && time < peakMorningEnd) ||
		(time >= peakEveningStart && time < peakEveningEnd)
}
