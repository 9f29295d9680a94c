package app

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// handleDepartments answers /departments with the department list from the
// roster file.
func (a *App) handleDepartments(ctx context.Context, m *tgbotapi.Message) {
	text, err := a.staff.Departments()
	if err != nil {
		a.log.Error("departments", zap.Error(err))
		a.reply(m.Chat.ID, errorText, false)
		return
	}
	a.reply(m.Chat.ID, text, false)
}

// handleStaff answers /staff [отдел], optionally filtered by a department
// substring.
func (a *App) handleStaff(ctx context.Context, m *tgbotapi.Message) {
	department := strings.TrimSpace(m.CommandArguments())
	text, err := a.staff.Staff(department)
	if err != nil {
		a.log.Error("staff", zap.Error(err))
		a.reply(m.Chat.ID, errorText, false)
		return
	}
	a.reply(m.Chat.ID, text, false)
}

// handleFind answers /find <query> with a search across name, department
// and position.
func (a *App) handleFind(ctx context.Context, m *tgbotapi.Message) {
	query := strings.TrimSpace(m.CommandArguments())
	if query == "" {
		a.reply(m.Chat.ID, findUsageText, false)
		return
	}
	text, err := a.staff.Find(query)
	if err != nil {
		a.log.Error("find", zap.Error(err))
		a.reply(m.Chat.ID, errorText, false)
		return
	}
	a.reply(m.Chat.ID, text, false)
}
