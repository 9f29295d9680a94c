package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/ilinovom/company-info-bot/internal/domain"
	"github.com/ilinovom/company-info-bot/internal/model"
)

// Notifier is the callback surface the scheduler fires into.
type Notifier interface {
	SendDigest(ctx context.Context)
	SendReminder(ctx context.Context, ev model.Event)
}

// registrar is the part of cron.Cron used for job registration.
type registrar interface {
	AddFunc(spec string, cmd func()) (cron.EntryID, error)
}

// Scheduler derives recurring triggers from the stored events and registers
// them with a cron runner pinned to the configured time zone, so every job
// fires at local wall-clock time even across daylight-saving transitions.
// Jobs run for the lifetime of the process; there is no per-job cancel.
type Scheduler struct {
	cron     *cron.Cron
	notifier Notifier
	log      *zap.Logger
}

func New(loc *time.Location, notifier Notifier, log *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		notifier: notifier,
		log:      log,
	}
}

// Schedule registers the daily digest job and one weekly reminder job per
// well-formed event. A malformed event is logged and skipped; it never
// blocks the digest or the remaining events.
func (s *Scheduler) Schedule(events []model.Event) {
	s.register(s.cron, events)
}

func (s *Scheduler) register(r registrar, events []model.Event) {
	triggers := domain.BuildTriggers(events, func(ev model.Event, err error) {
		s.log.Warn("skipping malformed event",
			zap.String("day", ev.Day),
			zap.String("time", ev.Time),
			zap.Error(err),
		)
	})
	for _, t := range triggers {
		spec := domain.CronSpec(t)
		var job func()
		if t.Event == nil {
			job = func() { s.notifier.SendDigest(context.Background()) }
		} else {
			ev := *t.Event
			job = func() { s.notifier.SendReminder(context.Background(), ev) }
		}
		if _, err := r.AddFunc(spec, job); err != nil {
			s.log.Warn("register trigger failed", zap.String("spec", spec), zap.Error(err))
			continue
		}
		s.log.Info("trigger registered", zap.String("spec", spec))
	}
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}
