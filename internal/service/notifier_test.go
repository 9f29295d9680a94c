package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ilinovom/company-info-bot/internal/model"
)

type memStore struct {
	doc *model.Document
	err error
}

func (m *memStore) Load() (*model.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	copy := *m.doc
	return &copy, nil
}

func (m *memStore) Save(doc *model.Document) error {
	copy := *doc
	m.doc = &copy
	return nil
}

type recordingSender struct {
	sent    map[int64][]string
	failFor map[int64]bool
}

func newRecordingSender() *recordingSender {
	return &recordingSender{sent: map[int64][]string{}, failFor: map[int64]bool{}}
}

func (r *recordingSender) SendMessage(chatID int64, text string) error {
	if r.failFor[chatID] {
		return errors.New("delivery failed")
	}
	r.sent[chatID] = append(r.sent[chatID], text)
	return nil
}

// fixed Monday in Moscow time
func mondayClock() func() time.Time {
	loc, _ := time.LoadLocation("Europe/Moscow")
	return func() time.Time {
		return time.Date(2025, time.May, 5, 9, 0, 0, 0, loc)
	}
}

func newTestNotifier(st *memStore, sender Sender) *NotifierService {
	loc, _ := time.LoadLocation("Europe/Moscow")
	n := NewNotifierService(st, sender, loc, zap.NewNop())
	n.now = mondayClock()
	return n
}

func TestSendDigest_BroadcastsToAllSubscribers(t *testing.T) {
	st := &memStore{doc: &model.Document{
		Subscribers: []int64{111, 222},
		Digests:     map[string]string{"Понедельник": "Hi"},
	}}
	sender := newRecordingSender()

	newTestNotifier(st, sender).SendDigest(context.Background())

	require.Equal(t, []string{"Hi"}, sender.sent[111])
	require.Equal(t, []string{"Hi"}, sender.sent[222])
}

func TestSendDigest_FailureDoesNotBlockOthers(t *testing.T) {
	st := &memStore{doc: &model.Document{
		Subscribers: []int64{111, 222},
		Digests:     map[string]string{"Понедельник": "Hi"},
	}}
	sender := newRecordingSender()
	sender.failFor[111] = true

	newTestNotifier(st, sender).SendDigest(context.Background())

	require.Empty(t, sender.sent[111])
	require.Equal(t, []string{"Hi"}, sender.sent[222])
}

func TestSendDigest_NoDigestTodayIsSilent(t *testing.T) {
	st := &memStore{doc: &model.Document{
		Subscribers: []int64{111},
		Digests:     map[string]string{"Вторник": "not today"},
	}}
	sender := newRecordingSender()

	newTestNotifier(st, sender).SendDigest(context.Background())

	require.Empty(t, sender.sent)
}

func TestSendReminder_FormatsTemplate(t *testing.T) {
	st := &memStore{doc: &model.Document{Subscribers: []int64{5}}}
	sender := newRecordingSender()

	ev := model.Event{Day: "Пятница", Time: "09:10", Title: "Планёрка", Description: "еженедельная"}
	newTestNotifier(st, sender).SendReminder(context.Background(), ev)

	require.Equal(t, []string{"Напоминание: Планёрка в 09:10. еженедельная"}, sender.sent[5])
}
