package clear_bookings

import clearUC "github.com/m04kA/SMC-TimeslotsService/internal/usecase/clear_bookings"

// ClearRequest HTTP request model
type ClearRequest struct {
	MemberName string `json:"memberName"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ClearRequest) ToUseCaseRequest() *clearUC.Request {
	return &clearUC.Request{
		MemberName: r.MemberName,
	}
}
