package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ilinovom/company-info-bot/internal/domain"
	"github.com/ilinovom/company-info-bot/internal/model"
	"github.com/ilinovom/company-info-bot/internal/store"
)

// Sender delivers one message to one chat. The Telegram wrapper in app
// implements it.
type Sender interface {
	SendMessage(chatID int64, text string) error
}

// NotifierService broadcasts scheduled messages to every current subscriber.
// It re-reads the store on each fire, so subscribers added after startup get
// the next broadcast. Delivery is best-effort per subscriber: a failed send
// is logged and never blocks the remaining sends or later fires.
type NotifierService struct {
	store  store.Store
	sender Sender
	loc    *time.Location
	log    *zap.Logger
	now    func() time.Time
}

func NewNotifierService(st store.Store, sender Sender, loc *time.Location, log *zap.Logger) *NotifierService {
	return &NotifierService{store: st, sender: sender, loc: loc, log: log, now: time.Now}
}

// SendDigest delivers today's digest. No digest configured for today's
// weekday is a silent no-op.
func (s *NotifierService) SendDigest(ctx context.Context) {
	doc, err := s.store.Load()
	if err != nil {
		s.log.Error("load document", zap.Error(err))
		return
	}
	today := domain.WeekdayOf(s.now().In(s.loc))
	msg := doc.Digests[today.String()]
	if msg == "" {
		return
	}
	s.broadcast(doc.Subscribers, msg)
}

// SendReminder delivers the reminder for ev.
func (s *NotifierService) SendReminder(ctx context.Context, ev model.Event) {
	doc, err := s.store.Load()
	if err != nil {
		s.log.Error("load document", zap.Error(err))
		return
	}
	text := fmt.Sprintf("Напоминание: %s в %s. %s", ev.Title, ev.Time, ev.Description)
	s.broadcast(doc.Subscribers, text)
}

func (s *NotifierService) broadcast(subscribers []int64, text string) {
	for _, chatID := range subscribers {
		if err := s.sender.SendMessage(chatID, text); err != nil {
			s.log.Warn("send failed", zap.Int64("chat_id", chatID), zap.Error(err))
		}
	}
}
