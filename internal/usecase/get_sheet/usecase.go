package get_sheet

import (
	"context"
	"fmt"
)

// UseCase use case получения листа записи
type UseCase struct {
	grid   CalendarGrid
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(grid CalendarGrid, logger Logger) *UseCase {
	return &UseCase{
		grid:   grid,
		logger: logger,
	}
}

// Execute загружает свежий снимок сетки и сворачивает слоты каждого дня
// в визуальные блоки
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	days, err := uc.grid.GetSlotsByDay(ctx)
	if err != nil {
		uc.logger.Error("GetSheet: failed to load grid: %v", err)
		return nil, fmt.Errorf("%w: failed to load grid: %v", ErrInternal, err)
	}

	resp := &Response{
		SlotDefs: uc.grid.SlotDefs(),
		Days:     make([]DayView, 0, len(days)),
	}

	for _, day := range days {
		resp.Days = append(resp.Days, DayView{
			ID:     day.Day.ID,
			Name:   day.Day.Name,
			Blocks: buildBlocks(day.Slots),
		})
	}

	return resp, nil
}
