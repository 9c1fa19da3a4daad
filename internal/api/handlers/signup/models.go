package signup

import signupUC "github.com/m04kA/SMC-TimeslotsService/internal/usecase/signup"

// SignupRequest HTTP request model
type SignupRequest struct {
	DayIndex   int    `json:"dayIndex"`
	SlotIndex  int    `json:"slotIndex"`
	MemberName string `json:"memberName"`
	Duration   string `json:"duration"` // "1/2" или "1"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SignupRequest) ToUseCaseRequest() *signupUC.Request {
	return &signupUC.Request{
		DayIndex:   r.DayIndex,
		SlotIndex:  r.SlotIndex,
		MemberName: r.MemberName,
		Duration:   r.Duration,
	}
}
