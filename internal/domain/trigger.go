package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ilinovom/company-info-bot/internal/model"
)

const (
	digestHour   = 9
	digestMinute = 0

	// reminderLeadMinutes is how long before an event its reminder fires.
	reminderLeadMinutes = 15
)

type TriggerKind int

const (
	KindDaily TriggerKind = iota
	KindWeekly
)

// Trigger is a derived recurring fire time, local to the configured zone.
// Triggers exist only in memory for one scheduling pass and are never
// mutated. Daily triggers ignore Weekday and carry no payload.
type Trigger struct {
	Kind    TriggerKind
	Weekday Weekday
	Hour    int
	Minute  int
	Event   *model.Event // reminder payload; nil for the digest
}

var ErrBadClock = errors.New("bad clock string")

// ParseClock parses a local "HH:MM" clock string.
func ParseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadClock, s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadClock, s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadClock, s)
	}
	return hour, minute, nil
}

// DigestTrigger returns the unconditional daily digest trigger, 09:00 local.
func DigestTrigger() Trigger {
	return Trigger{Kind: KindDaily, Hour: digestHour, Minute: digestMinute}
}

// ReminderTrigger derives the weekly reminder trigger for ev: the event's
// clock time minus 15 minutes, as true clock arithmetic. A subtraction that
// crosses midnight attributes the reminder to the previous weekday, so
// "Понедельник 00:05" fires at 23:50 on Воскресенье.
func ReminderTrigger(ev model.Event) (Trigger, error) {
	day, err := ParseWeekday(ev.Day)
	if err != nil {
		return Trigger{}, err
	}
	h, m, err := ParseClock(ev.Time)
	if err != nil {
		return Trigger{}, err
	}
	total := h*60 + m - reminderLeadMinutes
	if total < 0 {
		total += 24 * 60
		day = day.Prev()
	}
	payload := ev
	return Trigger{
		Kind:    KindWeekly,
		Weekday: day,
		Hour:    total / 60,
		Minute:  total % 60,
		Event:   &payload,
	}, nil
}

// BuildTriggers derives the trigger set for one scheduling pass: the daily
// digest first, then one reminder per well-formed event. A malformed event is
// reported to onErr and skipped; it never blocks the digest or the remaining
// events. Duplicate (day, time) pairs both produce triggers.
func BuildTriggers(events []model.Event, onErr func(ev model.Event, err error)) []Trigger {
	out := make([]Trigger, 0, len(events)+1)
	out = append(out, DigestTrigger())
	for _, ev := range events {
		t, err := ReminderTrigger(ev)
		if err != nil {
			if onErr != nil {
				onErr(ev, err)
			}
			continue
		}
		out = append(out, t)
	}
	return out
}

// CronSpec renders t as a standard five-field cron spec. The runner is
// pinned to the configured location, so the spec stays wall-clock local.
func CronSpec(t Trigger) string {
	if t.Kind == KindDaily {
		return fmt.Sprintf("%d %d * * *", t.Minute, t.Hour)
	}
	return fmt.Sprintf("%d %d * * %d", t.Minute, t.Hour, t.Weekday.CronDOW())
}
