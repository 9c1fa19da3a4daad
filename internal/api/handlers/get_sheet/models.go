package get_sheet

import (
	"github.com/m04kA/SMC-TimeslotsService/internal/domain"
	getSheet "github.com/m04kA/SMC-TimeslotsService/internal/usecase/get_sheet"
)

// SheetResponse HTTP-модель листа записи
type SheetResponse struct {
	SlotDefs []SlotDefResponse `json:"slotDefs"`
	Days     []DayResponse     `json:"days"`
}

// SlotDefResponse определение одного слота дня
type SlotDefResponse struct {
	ID          int     `json:"id"`
	Time        float64 `json:"time"`
	DisplayTime string  `json:"displayTime"`
}

// DayResponse один день листа
type DayResponse struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Slots []BlockResponse `json:"slots"`
}

// BlockResponse визуальный блок из слитых соседних слотов
type BlockResponse struct {
	SlotIndex              int     `json:"slotIndex"`
	Height                 int     `json:"height"`
	PeakTime               bool    `json:"peakTime"`
	ChargeTime             bool    `json:"chargeTime"`
	MemberName             *string `json:"memberName,omitempty"`
	IsAvailableForUse      bool    `json:"isAvailableForUse"`
	IsAvailableForCharging bool    `json:"isAvailableForCharging"`
	DisplayClass           string  `json:"displayClass"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSheet.Response) *SheetResponse {
	out := &SheetResponse{
		SlotDefs: make([]SlotDefResponse, 0, len(resp.SlotDefs)),
		Days:     make([]DayResponse, 0, len(resp.Days)),
	}

	for _, def := range resp.SlotDefs {
		out.SlotDefs = append(out.SlotDefs, SlotDefResponse{
			ID:          def.ID,
			Time:        def.Time,
			DisplayTime: def.DisplayTime,
		})
	}

	for _, day := range resp.Days {
		dayResp := DayResponse{
			ID:    day.ID,
			Name:  day.Name,
			Slots: make([]BlockResponse, 0, len(day.Blocks)),
		}
		for _, block := range day.Blocks {
			dayResp.Slots = append(dayResp.Slots, fromDomainBlock(block))
		}
		out.Days = append(out.Days, dayResp)
	}

	return out
}

func fromDomainBlock(block domain.DisplayBlock) BlockResponse {
	return BlockResponse{
		SlotIndex:              block.SlotIndex,
		Height:                 block.Height,
		PeakTime:               block.PeakTime,
		ChargeTime:             block.ChargeTime,
		MemberName:             block.MemberName,
		IsAvailableForUse:      block.IsAvailableForUse,
		IsAvailableForCharging: block.IsAvailableForCharging,
		DisplayClass:           block.DisplayClass,
	}
}
