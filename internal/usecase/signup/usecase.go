package signup

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TimeslotsService/internal/domain"
)

// UseCase use case записи участника на последовательность слотов
type UseCase struct {
	grid      CalendarGrid
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(grid CalendarGrid, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		grid:      grid,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет запись: валидация доступности и фиксация бронирования
// проходят одной сериализуемой транзакцией, чтобы два одновременных запроса
// на пересекающиеся слоты не прошли валидацию оба
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("Signup: day=%d, slot=%d, member=%q, duration=%s",
		req.DayIndex, req.SlotIndex, req.MemberName, req.Duration)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("Signup: validation failed: %v", err)
		return nil, err
	}

	// 2. Перевод длительности в количество слотов
	// Каждый слот использования требует двух слотов зарядки после себя
	useCount, err := slotsForDuration(req.Duration)
	if err != nil {
		uc.logger.Error("Signup: %v", err)
		return nil, err
	}
	chargeCount := useCount * domain.ChargeSlotsPerUseSlot
	totalCount := useCount + chargeCount

	// 3. Валидация и фиксация в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		seq, err := uc.grid.GetSlotSequence(txCtx, req.DayIndex, req.SlotIndex, totalCount)
		if err != nil {
			return fmt.Errorf("%w: failed to get slot sequence: %v", ErrInternal, err)
		}

		// 3.1. Слоты использования: должны существовать и быть свободными
		// вне пиковых часов
		for i := 0; i < useCount; i++ {
			if i >= len(seq) {
				return ErrNotEnoughTime
			}
			if !seq[i].IsAvailableForUse() {
				return ErrSlotUnavailable
			}
		}

		// 3.2. Слоты зарядки: конец дня допустим (машина заряжается после
		// закрытия), занятый слот - нет. Зарядка разрешена в пиковые часы
		for j := useCount; j < totalCount; j++ {
			if j >= len(seq) {
				break
			}
			if !seq[j].IsAvailableForCharging() {
				return ErrNoTimeToCharge
			}
		}

		// 3.3. Фиксация - единственный путь мутации
		if err := uc.grid.ApplyBooking(txCtx, req.DayIndex, req.SlotIndex, useCount, chargeCount, req.MemberName); err != nil {
			return fmt.Errorf("%w: failed to apply booking: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if isUserError(err) {
			uc.logger.Warn("Signup: rejected for member=%q: %v", req.MemberName, err)
		} else {
			uc.logger.Error("Signup: failed for member=%q: %v", req.MemberName, err)
		}
		return nil, err
	}

	uc.logger.Info("Signup: success, member=%q booked day=%d slots [%d, %d)",
		req.MemberName, req.DayIndex, req.SlotIndex, req.SlotIndex+totalCount)

	return &Response{
		DayIndex:    req.DayIndex,
		SlotIndex:   req.SlotIndex,
		MemberName:  req.MemberName,
		UseSlots:    useCount,
		ChargeSlots: chargeCount,
	}, nil
}

// isUserError отличает ошибки выбора пользователя от системных
func isUserError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrNotEnoughTime) ||
		errors.Is(err, ErrSlotUnavailable) ||
		errors.Is(err, ErrNoTimeToCharge)
}
