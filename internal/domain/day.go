package domain

// DayDef represents one day of the recurring week
type DayDef struct {
	ID   int // 0 = Sunday .. 6 = Saturday
	Name string
}

var dayNames = [DaysPerWeek]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// Days returns the fixed set of day definitions, ordered by index
func Days() []DayDef {
	days := make([]DayDef, DaysPerWeek)
	for i, name := range dayNames {
		days[i] = DayDef{ID: i, Name: name}
	}
	return days
}
