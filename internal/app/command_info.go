package app

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// handleCompany answers /company with the company card.
func (a *App) handleCompany(ctx context.Context, m *tgbotapi.Message) {
	text, err := a.info.Company()
	if err != nil {
		a.log.Error("company", zap.Error(err))
		a.reply(m.Chat.ID, errorText, false)
		return
	}
	a.reply(m.Chat.ID, text, true)
}

// handleTeam answers /team with the team roster.
func (a *App) handleTeam(ctx context.Context, m *tgbotapi.Message) {
	text, err := a.info.Team()
	if err != nil {
		a.log.Error("team", zap.Error(err))
		a.reply(m.Chat.ID, errorText, false)
		return
	}
	a.reply(m.Chat.ID, text, false)
}

// handleContacts answers /contacts with the contact card.
func (a *App) handleContacts(ctx context.Context, m *tgbotapi.Message) {
	text, err := a.info.Contacts()
	if err != nil {
		a.log.Error("contacts", zap.Error(err))
		a.reply(m.Chat.ID, errorText, false)
		return
	}
	a.reply(m.Chat.ID, text, true)
}

// handleEvents answers /events with the weekly event list.
func (a *App) handleEvents(ctx context.Context, m *tgbotapi.Message) {
	text, err := a.info.Events()
	if err != nil {
		a.log.Error("events", zap.Error(err))
		a.reply(m.Chat.ID, errorText, false)
		return
	}
	a.reply(m.Chat.ID, text, false)
}

// handleDigest answers /digest with today's digest.
func (a *App) handleDigest(ctx context.Context, m *tgbotapi.Message) {
	text, err := a.info.Digest()
	if err != nil {
		a.log.Error("digest", zap.Error(err))
		a.reply(m.Chat.ID, errorText, false)
		return
	}
	a.reply(m.Chat.ID, text, false)
}
