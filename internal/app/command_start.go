package app

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/ilinovom/company-info-bot/internal/store"
)

// handleStart subscribes the chat to scheduled broadcasts and greets the
// user. Subscribing an already-known chat is a no-op, so /start is safe to
// repeat.
func (a *App) handleStart(ctx context.Context, m *tgbotapi.Message) {
	a.log.Info("user called /start", zap.Int64("chat_id", m.Chat.ID))

	doc, err := a.store.Load()
	if err != nil {
		a.log.Error("load document", zap.Error(err))
	} else if store.Subscribe(doc, m.Chat.ID) {
		if err := a.store.Save(doc); err != nil {
			a.log.Error("save document", zap.Error(err))
		}
	}

	first := ""
	if m.From != nil {
		first = m.From.FirstName
	}
	a.reply(m.Chat.ID, fmt.Sprintf(startFmt, first), true)
}
