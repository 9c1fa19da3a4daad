package slots

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TimeslotsService/internal/domain"
	"github.com/m04kA/SMC-TimeslotsService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TimeslotsService/pkg/psqlbuilder"
)

// Repository репозиторий для работы со слотами недельной сетки
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Count возвращает количество слотов, сохранённых для указанной недели
// Используется при инициализации сетки для проверки консистентности
func (r *Repository) Count(ctx context.Context, weekIdx int) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("time_slots").
		Where(squirrel.Eq{"week_idx": weekIdx}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// LoadAll загружает все слоты недели, упорядоченные по дню и индексу слота
func (r *Repository) LoadAll(ctx context.Context, weekIdx int) ([]domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"week_idx",
		"day_idx",
		"slot_idx",
		"member_name",
		"charge_time",
		"peak_time",
	).
		From("time_slots").
		Where(squirrel.Eq{"week_idx": weekIdx}).
		OrderBy("day_idx ASC", "slot_idx ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: LoadAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows, "LoadAll")
}

// GetRange загружает слоты одного дня в полуинтервале [fromIdx, toIdx),
// упорядоченные по индексу слота.
// Внутри транзакции добавляет FOR UPDATE - блокировка затронутого диапазона
// не даёт двум одновременным записям пройти валидацию по одним и тем же слотам
func (r *Repository) GetRange(ctx context.Context, weekIdx, dayIdx, fromIdx, toIdx int) ([]domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"week_idx",
		"day_idx",
		"slot_idx",
		"member_name",
		"charge_time",
		"peak_time",
	).
		From("time_slots").
		Where(squirrel.Eq{"week_idx": weekIdx, "day_idx": dayIdx}).
		Where(squirrel.GtOrEq{"slot_idx": fromIdx}).
		Where(squirrel.Lt{"slot_idx": toIdx}).
		OrderBy("slot_idx ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows, "GetRange")
}

// UpdateRange устанавливает владельца и флаг зарядки на слоты одного дня
// в полуинтервале [fromIdx, toIdx). Передача nil очищает соответствующее поле.
// Возвращает количество обновлённых слотов
func (r *Repository) UpdateRange(
	ctx context.Context,
	weekIdx, dayIdx, fromIdx, toIdx int,
	memberName *string,
	chargeTime *bool,
) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_slots").
		Set("member_name", memberName).
		Set("charge_time", chargeTime).
		Where(squirrel.Eq{"week_idx": weekIdx, "day_idx": dayIdx}).
		Where(squirrel.GtOrEq{"slot_idx": fromIdx}).
		Where(squirrel.Lt{"slot_idx": toIdx}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: UpdateRange - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: UpdateRange - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: UpdateRange - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// ClearMember очищает владельца и флаг зарядки на всех слотах недели,
// занятых указанным участником. Возвращает количество очищенных слотов
func (r *Repository) ClearMember(ctx context.Context, weekIdx int, memberName string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_slots").
		Set("member_name", nil).
		Set("charge_time", nil).
		Where(squirrel.Eq{"week_idx": weekIdx, "member_name": memberName}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: ClearMember - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: ClearMember - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: ClearMember - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// BulkInsert вставляет слоты одним запросом
// Используется один раз - при первичном наполнении пустой сетки
func (r *Repository) BulkInsert(ctx context.Context, slotsToInsert []domain.Slot) error {
	if len(slotsToInsert) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("time_slots").
		Columns(
			"week_idx",
			"day_idx",
			"slot_idx",
			"member_name",
			"charge_time",
			"peak_time",
		)

	for _, slot := range slotsToInsert {
		insertBuilder = insertBuilder.Values(
			slot.WeekIndex,
			slot.DayIndex,
			slot.SlotIndex,
			slot.MemberName,
			slot.ChargeTime,
			slot.PeakTime,
		)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: BulkInsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: BulkInsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// scanSlots сканирует результаты запроса в слайс слотов
func (r *Repository) scanSlots(rows *sql.Rows, method string) ([]domain.Slot, error) {
	result := make([]domain.Slot, 0)

	for rows.Next() {
		var slot domain.Slot
		var memberName sql.NullString
		var chargeTime sql.NullBool

		err := rows.Scan(
			&slot.WeekIndex,
			&slot.DayIndex,
			&slot.SlotIndex,
			&memberName,
			&chargeTime,
			&slot.PeakTime,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, method, err)
		}

		if memberName.Valid {
			slot.MemberName = &memberName.String
		}
		if chargeTime.Valid {
			slot.ChargeTime = &chargeTime.Bool
		}

		result = append(result, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return result, nil
}
