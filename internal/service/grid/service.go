package grid

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-TimeslotsService/internal/domain"
	"github.com/m04kA/SMC-TimeslotsService/pkg/ptr"
)

// Service календарная сетка: единственный владелец состояния слотов
// Все чтения и мутации проходят через репозиторий; определения слотов и дней
// неизменяемы и вычисляются один раз при старте
type Service struct {
	repo     SlotRepository
	slotDefs []domain.SlotDef
	days     []domain.DayDef
	logger   Logger
}

// NewService создает новый экземпляр сервиса сетки
func NewService(repo SlotRepository, slotDefs []domain.SlotDef, logger Logger) *Service {
	return &Service{
		repo:     repo,
		slotDefs: slotDefs,
		days:     domain.Days(),
		logger:   logger,
	}
}

// SlotDefs возвращает определения слотов дня
func (s *Service) SlotDefs() []domain.SlotDef {
	return s.slotDefs
}

// Initialize приводит хранилище к готовому состоянию.
// Пустое хранилище наполняется чистой сеткой 7 x N с вычисленным peak_time.
// Хранилище с полным набором слотов считается готовым.
// Любое другое количество слотов - фатальная ошибка консистентности:
// сервис отказывается обслуживать запросы вместо тихого ремонта
func (s *Service) Initialize(ctx context.Context) error {
	expected := len(s.days) * len(s.slotDefs)

	count, err := s.repo.Count(ctx, domain.DefaultWeekIndex)
	if err != nil {
		return fmt.Errorf("%w: Initialize - count slots: %v", ErrInternal, err)
	}

	if count == expected {
		s.logger.Info("Grid: storage ready, %d slots found", count)
		return nil
	}

	if count != 0 {
		s.logger.Error("Grid: storage corrupted, found %d slots, expected 0 or %d", count, expected)
		return fmt.Errorf("%w: found %d slots, expected %d", ErrGridCorrupted, count, expected)
	}

	slots := make([]domain.Slot, 0, expected)
	for _, day := range s.days {
		for _, def := range s.slotDefs {
			slots = append(slots, domain.Slot{
				WeekIndex: domain.DefaultWeekIndex,
				DayIndex:  day.ID,
				SlotIndex: def.ID,
				PeakTime:  domain.IsPeakTime(day.ID, def.Time),
			})
		}
	}

	if err := s.repo.BulkInsert(ctx, slots); err != nil {
		return fmt.Errorf("%w: Initialize - insert grid: %v", ErrInternal, err)
	}

	s.logger.Info("Grid: initialized empty storage with %d slots", expected)
	return nil
}

// GetSlotsByDay возвращает полный снимок сетки: для каждого дня недели -
// упорядоченный список его слотов
func (s *Service) GetSlotsByDay(ctx context.Context) ([]domain.DaySlots, error) {
	slots, err := s.repo.LoadAll(ctx, domain.DefaultWeekIndex)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotsByDay - load slots: %v", ErrInternal, err)
	}

	result := make([]domain.DaySlots, len(s.days))
	for i, day := range s.days {
		result[i] = domain.DaySlots{
			Day:   day,
			Slots: make([]domain.Slot, 0, len(s.slotDefs)),
		}
	}

	for _, slot := range slots {
		if slot.DayIndex < 0 || slot.DayIndex >= len(result) {
			return nil, fmt.Errorf("%w: GetSlotsByDay - slot with day index %d outside the week", ErrInternal, slot.DayIndex)
		}
		result[slot.DayIndex].Slots = append(result[slot.DayIndex].Slots, slot)
	}

	return result, nil
}

// GetSlotSequence возвращает до length последовательных слотов одного дня,
// начиная с startSlotIndex. Если день заканчивается раньше, слотов будет
// меньше. Если startSlotIndex вне границ дня - возвращает пустой список
func (s *Service) GetSlotSequence(ctx context.Context, dayIndex, startSlotIndex, length int) ([]domain.Slot, error) {
	if dayIndex < 0 || dayIndex >= len(s.days) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDay, dayIndex)
	}

	slotsPerDay := len(s.slotDefs)
	if startSlotIndex < 0 || startSlotIndex >= slotsPerDay || length <= 0 {
		return []domain.Slot{}, nil
	}

	toIdx := startSlotIndex + length
	if toIdx > slotsPerDay {
		toIdx = slotsPerDay
	}

	seq, err := s.repo.GetRange(ctx, domain.DefaultWeekIndex, dayIndex, startSlotIndex, toIdx)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotSequence - load range: %v", ErrInternal, err)
	}

	return seq, nil
}

// ApplyBooking записывает бронирование: слоты [firstUseIndex, firstUseIndex+useCount)
// получают владельца, следующие chargeCount слотов - владельца и флаг зарядки.
// Индексы за последним слотом дня молча отбрасываются: зарядка может
// продолжаться после закрытия
func (s *Service) ApplyBooking(ctx context.Context, dayIndex, firstUseIndex, useCount, chargeCount int, memberName string) error {
	if dayIndex < 0 || dayIndex >= len(s.days) {
		return fmt.Errorf("%w: %d", ErrInvalidDay, dayIndex)
	}

	slotsPerDay := len(s.slotDefs)

	useFrom := firstUseIndex
	useTo := clamp(firstUseIndex+useCount, slotsPerDay)
	chargeFrom := firstUseIndex + useCount
	chargeTo := clamp(chargeFrom+chargeCount, slotsPerDay)

	if useFrom < useTo {
		updated, err := s.repo.UpdateRange(ctx, domain.DefaultWeekIndex, dayIndex, useFrom, useTo, &memberName, nil)
		if err != nil {
			return fmt.Errorf("%w: ApplyBooking - update use slots: %v", ErrInternal, err)
		}
		if updated != int64(useTo-useFrom) {
			return fmt.Errorf("%w: ApplyBooking - updated %d use slots, expected %d", ErrInternal, updated, useTo-useFrom)
		}
	}

	if chargeFrom < chargeTo {
		updated, err := s.repo.UpdateRange(ctx, domain.DefaultWeekIndex, dayIndex, chargeFrom, chargeTo, &memberName, ptr.Ptr(true))
		if err != nil {
			return fmt.Errorf("%w: ApplyBooking - update charge slots: %v", ErrInternal, err)
		}
		if updated != int64(chargeTo-chargeFrom) {
			return fmt.Errorf("%w: ApplyBooking - updated %d charge slots, expected %d", ErrInternal, updated, chargeTo-chargeFrom)
		}
	}

	return nil
}

// ClearForMember очищает все слоты, занятые участником, на всех днях недели
// Возвращает true, если хотя бы один слот был найден
func (s *Service) ClearForMember(ctx context.Context, memberName string) (bool, error) {
	cleared, err := s.repo.ClearMember(ctx, domain.DefaultWeekIndex, memberName)
	if err != nil {
		return false, fmt.Errorf("%w: ClearForMember - clear slots: %v", ErrInternal, err)
	}

	return cleared > 0, nil
}

func clamp(idx, max int) int {
	if idx > max {
		return max
	}
	return idx
}
