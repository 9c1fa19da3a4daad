package clear_bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TimeslotsService/internal/domain"
)

// UseCase use case снятия всех бронирований участника
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

// Execute снимает все слоты, занятые участником, на всех днях недели
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("ClearBookings: member=%q", req.MemberName)

	memberName := strings.TrimSpace(req.MemberName)
	if memberName == "" {
		uc.logger.Warn("ClearBookings: empty member name")
		return fmt.Errorf("%w: memberName is required", ErrInvalidInput)
	}
	if len(memberName) > domain.MaxMemberNameLength {
		uc.logger.Warn("ClearBookings: member name too long")
		return fmt.Errorf("%w: memberName exceeds %d characters", ErrInvalidInput, domain.MaxMemberNameLength)
	}

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		found, err := uc.grid.ClearForMember(txCtx, memberName)
		if err != nil {
			return fmt.Errorf("%w: failed to clear slots: %v", ErrInternal, err)
		}
		if !found {
			return ErrNoBookingsFound
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrNoBookingsFound) {
			uc.logger.Warn("ClearBookings: nothing to clear for member=%q", memberName)
		} else {
			uc.logger.Error("ClearBookings: failed for member=%q: %v", memberName, err)
		}
		return err
	}

	uc.logger.Info("ClearBookings: success, member=%q", memberName)
	return nil
}
