package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ilinovom/company-info-bot/internal/model"
)

func TestReminderTrigger_FifteenMinutesBefore(t *testing.T) {
	ev := model.Event{Day: "Пятница", Time: "09:10", Title: "Планёрка"}
	tr, err := ReminderTrigger(ev)
	require.NoError(t, err)
	require.Equal(t, KindWeekly, tr.Kind)
	require.Equal(t, Friday, tr.Weekday)
	require.Equal(t, 8, tr.Hour)
	require.Equal(t, 55, tr.Minute)
	require.NotNil(t, tr.Event)
	require.Equal(t, "Планёрка", tr.Event.Title)
}

func TestReminderTrigger_MidnightRollsWeekdayBack(t *testing.T) {
	// 00:05 minus 15 minutes is 23:50 on the previous day, so a Monday
	// event must fire its reminder on Sunday, not at a clamped 00:00.
	ev := model.Event{Day: "Понедельник", Time: "00:05"}
	tr, err := ReminderTrigger(ev)
	require.NoError(t, err)
	require.Equal(t, Sunday, tr.Weekday)
	require.Equal(t, 23, tr.Hour)
	require.Equal(t, 50, tr.Minute)
}

func TestReminderTrigger_BadInput(t *testing.T) {
	_, err := ReminderTrigger(model.Event{Day: "Not a day", Time: "09:00"})
	require.True(t, errors.Is(err, ErrUnknownWeekday))

	_, err = ReminderTrigger(model.Event{Day: "Среда", Time: "9 утра"})
	require.True(t, errors.Is(err, ErrBadClock))

	_, err = ReminderTrigger(model.Event{Day: "Среда", Time: "25:00"})
	require.True(t, errors.Is(err, ErrBadClock))
}

func TestParseClock(t *testing.T) {
	h, m, err := ParseClock("18:30")
	require.NoError(t, err)
	require.Equal(t, 18, h)
	require.Equal(t, 30, m)

	for _, bad := range []string{"", "18", "18:60", "-1:00", "aa:bb"} {
		if _, _, err := ParseClock(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestBuildTriggers_MalformedEventIsIsolated(t *testing.T) {
	events := []model.Event{
		{Day: "Вторник", Time: "broken", Title: "bad"},
		{Day: "Пятница", Time: "09:10", Title: "good"},
	}
	var skipped []model.Event
	triggers := BuildTriggers(events, func(ev model.Event, err error) {
		require.Error(t, err)
		skipped = append(skipped, ev)
	})

	// Digest plus the one well-formed reminder.
	require.Len(t, triggers, 2)
	require.Equal(t, KindDaily, triggers[0].Kind)
	require.Equal(t, "good", triggers[1].Event.Title)
	require.Len(t, skipped, 1)
	require.Equal(t, "bad", skipped[0].Title)
}

func TestBuildTriggers_NoEvents(t *testing.T) {
	triggers := BuildTriggers(nil, nil)
	require.Len(t, triggers, 1)
	require.Equal(t, KindDaily, triggers[0].Kind)
	require.Equal(t, 9, triggers[0].Hour)
	require.Equal(t, 0, triggers[0].Minute)
}

func TestBuildTriggers_DuplicatesBothScheduled(t *testing.T) {
	ev := model.Event{Day: "Среда", Time: "14:00", Title: "demo"}
	triggers := BuildTriggers([]model.Event{ev, ev}, nil)
	require.Len(t, triggers, 3)
}

func TestCronSpec(t *testing.T) {
	require.Equal(t, "0 9 * * *", CronSpec(DigestTrigger()))

	tr, err := ReminderTrigger(model.Event{Day: "Пятница", Time: "09:10"})
	require.NoError(t, err)
	require.Equal(t, "55 8 * * 5", CronSpec(tr))

	tr, err = ReminderTrigger(model.Event{Day: "Понедельник", Time: "00:05"})
	require.NoError(t, err)
	require.Equal(t, "50 23 * * 0", CronSpec(tr))
}
