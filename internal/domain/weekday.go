package domain

import (
	"errors"
	"fmt"
	"time"
)

// Weekday indexes the week Monday=0 .. Sunday=6, the ordering the event data
// uses. It is the single source for the seven Cyrillic labels; the scheduler
// and the digest lookup both go through it.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayLabels = [7]string{
	"Понедельник",
	"Вторник",
	"Среда",
	"Четверг",
	"Пятница",
	"Суббота",
	"Воскресенье",
}

var ErrUnknownWeekday = errors.New("unknown weekday label")

// ParseWeekday maps a Cyrillic weekday label to its Weekday.
func ParseWeekday(label string) (Weekday, error) {
	for i, l := range weekdayLabels {
		if l == label {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWeekday, label)
}

func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayLabels[w]
}

// WeekdayOf returns the Weekday of t. time.Weekday counts Sunday=0, so the
// index is shifted.
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}

// Prev returns the previous calendar weekday, wrapping Monday to Sunday.
func (w Weekday) Prev() Weekday {
	return (w + 6) % 7
}

// CronDOW returns the day-of-week number in cron's numbering (Sunday=0).
func (w Weekday) CronDOW() int {
	return (int(w) + 1) % 7
}
