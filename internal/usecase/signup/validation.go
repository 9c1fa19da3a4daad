package signup

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TimeslotsService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Имя участника обрезается по пробелам до дальнейшей обработки
func validateRequest(req *Request) error {
	if req.DayIndex < 0 || req.DayIndex >= domain.DaysPerWeek {
		return fmt.Errorf("%w: dayIndex out of range", ErrInvalidInput)
	}

	if req.SlotIndex < 0 {
		return fmt.Errorf("%w: slotIndex must be non-negative", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.MemberName)
	if name == "" {
		return fmt.Errorf("%w: memberName is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxMemberNameLength {
		return fmt.Errorf("%w: memberName exceeds %d characters", ErrInvalidInput, domain.MaxMemberNameLength)
	}
	req.MemberName = name

	return nil
}

// slotsForDuration переводит длительность использования в количество слотов
// Набор длительностей закрыт: "1/2" и "1" час
func slotsForDuration(duration string) (int, error) {
	switch duration {
	case domain.DurationHalfHour:
		return 1, nil
	case domain.DurationHour:
		return 2, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedDuration, duration)
	}
}
