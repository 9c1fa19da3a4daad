package get_sheet

import "github.com/m04kA/SMC-TimeslotsService/internal/domain"

// buildBlocks сворачивает плоский список слотов дня в последовательность
// визуальных блоков. Слоты обходятся по порядку индексов; соседний слот
// либо наращивает текущий блок (domain.Groupable), либо закрывает его
// и начинает новый. Высота блока - количество слитых слотов
func buildBlocks(daySlots []domain.Slot) []domain.DisplayBlock {
	blocks := make([]domain.DisplayBlock, 0, len(daySlots))
	if len(daySlots) == 0 {
		return blocks
	}

	current := domain.NewDisplayBlock(daySlots[0])
	prev := daySlots[0]

	for i := 1; i < len(daySlots); i++ {
		slot := daySlots[i]
		if domain.Groupable(&prev, &slot) {
			current.Grow()
		} else {
			blocks = append(blocks, current)
			current = domain.NewDisplayBlock(slot)
		}
		prev = slot
	}

	blocks = append(blocks, current)
	return blocks
}
