package clear_bookings

import "context"

// CalendarGrid интерфейс календарной сетки
type CalendarGrid interface {
	ClearForMember(ctx context.Context, memberName string) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
