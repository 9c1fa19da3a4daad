package domain

import (
	"fmt"
	"math"
)

// SlotDef is the immutable definition of a single time slot within a day
type SlotDef struct {
	ID          int     // 0-based position within the day
	Time        float64 // start time as fractional hours, e.g. 9.5 = 9:30
	DisplayTime string  // human-readable time range, e.g. "9:30 - 10:00 a.m."
}

// GenerateSlotDefs partitions the operating window [openHour, closeHour) into
// fixed-width slots and produces their display labels. The result is
// deterministic; it is generated once at startup and shared read-only.
func GenerateSlotDefs(openHour, closeHour, slotLength float64) []SlotDef {
	defs := make([]SlotDef, 0, int((closeHour-openHour)/slotLength))

	id := 0
	startTime := openHour
	for startTime < closeHour {
		endTime := startTime + slotLength
		defs = append(defs, SlotDef{
			ID:          id,
			Time:        startTime,
			DisplayTime: toDisplayTimeRange(startTime, endTime),
		})
		id++
		startTime = endTime
	}

	return defs
}

// SlotsPerDay returns the slot count produced by the production operating window
func SlotsPerDay() int {
	return int(math.Round((CloseHour - OpenHour) / SlotLengthHours))
}

// toDisplayTimeRange renders a time range label. The a.m./p.m. marker on the
// first time is shown only when the range straddles noon; the second time
// always carries its marker.
func toDisplayTimeRange(time1, time2 float64) string {
	displayPeriod1 := time1 < 12 && time2 >= 12
	return toDisplayTime(time1, displayPeriod1) + " - " + toDisplayTime(time2, true)
}

// toDisplayTime renders a fractional hour on a 12-hour clock
func toDisplayTime(time float64, includePeriod bool) string {
	hours := int(math.Floor(time))
	minutes := int(math.Round(60 * (time - float64(hours))))

	period := " a.m."
	if hours >= 12 {
		period = " p.m."
		if hours > 12 {
			hours -= 12
		}
	}

	label := fmt.Sprintf("%d:%02d", hours, minutes)
	if includePeriod {
		label += period
	}
	return label
}
