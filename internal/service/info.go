package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilinovom/company-info-bot/internal/domain"
	"github.com/ilinovom/company-info-bot/internal/store"
)

// InfoService builds command replies from the stored document. Each call
// re-reads the store so edits to data.json show up without a restart.
type InfoService struct {
	store store.Store
	loc   *time.Location
	now   func() time.Time
}

func NewInfoService(st store.Store, loc *time.Location) *InfoService {
	return &InfoService{store: st, loc: loc, now: time.Now}
}

// Company returns the company card (HTML).
func (s *InfoService) Company() (string, error) {
	doc, err := s.store.Load()
	if err != nil {
		return "", err
	}
	name := doc.Company.Name
	if name == "" {
		name = "Компания"
	}
	industry := doc.Company.Industry
	if industry == "" {
		industry = "Сфера деятельности"
	}
	return fmt.Sprintf("<b>%s</b>\nСфера: %s", name, industry), nil
}

// Team lists the team members.
func (s *InfoService) Team() (string, error) {
	doc, err := s.store.Load()
	if err != nil {
		return "", err
	}
	if len(doc.Team) == 0 {
		return "Нет данных о команде.", nil
	}
	lines := []string{"Состав команды:"}
	for _, m := range doc.Team {
		lines = append(lines, fmt.Sprintf("- %s — %s", m.Name, m.Role))
	}
	return strings.Join(lines, "\n"), nil
}

// Contacts returns the contact card (HTML).
func (s *InfoService) Contacts() (string, error) {
	doc, err := s.store.Load()
	if err != nil {
		return "", err
	}
	ivan := orDash(doc.Contacts.IvanovsPhone)
	olegEmail := orDash(doc.Contacts.OlegEmail)
	olegPhone := orDash(doc.Contacts.OlegPhone)
	return fmt.Sprintf(
		"Ивановы (общий): <code>%s</code>\nОлег Арсипов: <code>%s</code>, <code>%s</code>",
		ivan, olegEmail, olegPhone,
	), nil
}

// Events lists the weekly events.
func (s *InfoService) Events() (string, error) {
	doc, err := s.store.Load()
	if err != nil {
		return "", err
	}
	if len(doc.Events) == 0 {
		return "Ближайших событий нет.", nil
	}
	lines := []string{"Предстоящие события (еженедельно):"}
	for _, ev := range doc.Events {
		lines = append(lines, fmt.Sprintf("- %s %s: %s — %s", ev.Day, ev.Time, ev.Title, ev.Description))
	}
	return strings.Join(lines, "\n"), nil
}

// Digest returns today's digest in the configured time zone.
func (s *InfoService) Digest() (string, error) {
	doc, err := s.store.Load()
	if err != nil {
		return "", err
	}
	today := domain.WeekdayOf(s.now().In(s.loc))
	msg := doc.Digests[today.String()]
	if msg == "" {
		return "На сегодня нет дайджеста.", nil
	}
	return msg, nil
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
