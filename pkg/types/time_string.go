package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const (
	// TimeLayout формат времени суток на границе системы (HH:MM, с ведущими нулями)
	TimeLayout = "15:04"

	MinutesPerHour = 60
	MinutesPerDay  = 24 * MinutesPerHour
)

var (
	// ErrInvalidTimeFormat возвращается, когда строка не соответствует формату HH:MM
	ErrInvalidTimeFormat = errors.New("invalid time string format")

	// ErrOutOfDay возвращается, когда смещение в минутах выходит за пределы одних суток
	ErrOutOfDay = errors.New("time offset is outside of a single day")
)

// TimeString время суток с точностью до минуты в формате "HH:MM".
// Пустая строка означает, что время не задано.
type TimeString string

// NewTimeStringFromString разбирает строку формата HH:MM (ровно 5 символов, с ведущими нулями)
func NewTimeStringFromString(s string) (TimeString, error) {
	if len(s) != len(TimeLayout) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	if _, err := time.Parse(TimeLayout, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return TimeString(s), nil
}

// NewTimeString берет время суток из time.Time, секунды отбрасываются
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeLayout))
}

// NewTimeStringFromMinutes переводит смещение от полуночи в минутах во время суток.
// Смещения вне [0, 1440) не поддерживаются: переход через полночь не моделируется.
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= MinutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrOutOfDay, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/MinutesPerHour, minutes%MinutesPerHour)), nil
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат HH:MM
func (t TimeString) Validate() error {
	_, err := NewTimeStringFromString(string(t))
	return err
}

// ToMinutes возвращает смещение от полуночи в минутах (hour*60 + minute).
// Для невалидного значения возвращает -1.
func (t TimeString) ToMinutes() int {
	if t.Validate() != nil {
		return -1
	}
	hour := int(t[0]-'0')*10 + int(t[1]-'0')
	minute := int(t[3]-'0')*10 + int(t[4]-'0')
	return hour*MinutesPerHour + minute
}

// AddMinutes прибавляет минуты к времени суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(t.ToMinutes() + minutes)
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.ToMinutes() < other.ToMinutes()
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.ToMinutes() > other.ToMinutes()
}

// Equal сравнивает время с точностью до минуты
func (t TimeString) Equal(other TimeString) bool {
	return t.ToMinutes() == other.ToMinutes()
}

// Scan реализует sql.Scanner.
// Postgres отдает колонку TIME как "HH:MM:SS", секунды отбрасываем.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeFormat, src)
	}
}

func (t *TimeString) scanString(s string) error {
	if len(s) > len(TimeLayout) {
		s = s[:len(TimeLayout)]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}
