package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/ilinovom/company-info-bot/internal/config"
	"github.com/ilinovom/company-info-bot/internal/directory"
	"github.com/ilinovom/company-info-bot/internal/model"
	"github.com/ilinovom/company-info-bot/internal/scheduler"
	"github.com/ilinovom/company-info-bot/internal/service"
	"github.com/ilinovom/company-info-bot/internal/store"
)

// App wires the Telegram bot, the store-backed services and the scheduler.
// One instance serves either transport mode: long-polling by default, a
// webhook endpoint when USE_WEBHOOK is set.
type App struct {
	cfg      *config.Config
	log      *zap.Logger
	bot      *tgbotapi.BotAPI
	loc      *time.Location
	store    store.Store
	info     *service.InfoService
	staff    *service.StaffService
	notifier *service.NotifierService
	sched    *scheduler.Scheduler
}

func New(cfg *config.Config, log *zap.Logger) (*App, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}

	loc, ok := cfg.Location()
	if !ok {
		log.Warn("invalid TIMEZONE, using Europe/Moscow", zap.String("timezone", cfg.Timezone))
	}

	st := store.NewFileStore(cfg.DataFile)
	dir := directory.NewFileDirectory(cfg.EmployeesCSV, cfg.EmployeesXLSX)

	a := &App{
		cfg:   cfg,
		log:   log,
		bot:   bot,
		loc:   loc,
		store: st,
		info:  service.NewInfoService(st, loc),
		staff: service.NewStaffService(dir),
	}
	a.notifier = service.NewNotifierService(st, a, loc, log)
	a.sched = scheduler.New(loc, a.notifier, log)
	return a, nil
}

// SendMessage delivers one plain text message. This makes App satisfy
// service.Sender.
func (a *App) SendMessage(chatID int64, text string) error {
	_, err := a.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.setCommands()

	doc, err := a.store.Load()
	if err != nil {
		a.log.Warn("load document for scheduling", zap.Error(err))
		doc = &model.Document{}
	}
	a.sched.Schedule(doc.Events)
	a.sched.Start()
	defer a.sched.Stop()

	updates, cleanup, err := a.updates()
	if err != nil {
		return err
	}
	defer cleanup()

	a.log.Info("bot started",
		zap.Bool("webhook", a.cfg.UseWebhook),
		zap.String("timezone", a.loc.String()),
	)

	for {
		select {
		case <-ctx.Done():
			a.log.Info("shutting down")
			return nil
		case upd := <-updates:
			a.handleUpdate(ctx, upd)
		}
	}
}

// updates wires the transport: a long-poll channel by default, a webhook
// listener plus HTTP server when USE_WEBHOOK is set. PUBLIC_URL is required
// in webhook mode.
func (a *App) updates() (tgbotapi.UpdatesChannel, func(), error) {
	if !a.cfg.UseWebhook {
		u := tgbotapi.NewUpdate(0)
		u.Timeout = 30
		return a.bot.GetUpdatesChan(u), a.bot.StopReceivingUpdates, nil
	}

	if a.cfg.PublicURL == "" {
		return nil, nil, errors.New("PUBLIC_URL must be set in webhook mode")
	}
	path := a.cfg.WebhookPath
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	whURL := strings.TrimRight(a.cfg.PublicURL, "/") + path
	wh, err := tgbotapi.NewWebhook(whURL)
	if err != nil {
		return nil, nil, err
	}
	if _, err := a.bot.Request(wh); err != nil {
		return nil, nil, fmt.Errorf("set webhook: %w", err)
	}

	updates := a.bot.ListenForWebhook(path)
	srv := &http.Server{Addr: fmt.Sprintf("%s:%d", a.cfg.WebhookListen, a.cfg.WebhookPort)}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("webhook server", zap.Error(err))
		}
	}()
	a.log.Info("webhook registered", zap.String("url", whURL))

	cleanup := func() {
		shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shCtx)
	}
	return updates, cleanup, nil
}

// handleUpdate routes one update to its command handler. A panicking handler
// is logged and answered with a generic apology; the loop keeps running.
func (a *App) handleUpdate(ctx context.Context, upd tgbotapi.Update) {
	msg := upd.Message
	if msg == nil || !msg.IsCommand() {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("handler panic",
				zap.String("command", msg.Command()),
				zap.Any("panic", r),
			)
			a.reply(msg.Chat.ID, errorText, false)
		}
	}()

	switch msg.Command() {
	case "start":
		a.handleStart(ctx, msg)
	case "help":
		a.reply(msg.Chat.ID, helpText, false)
	case "company":
		a.handleCompany(ctx, msg)
	case "team":
		a.handleTeam(ctx, msg)
	case "contacts":
		a.handleContacts(ctx, msg)
	case "events":
		a.handleEvents(ctx, msg)
	case "digest":
		a.handleDigest(ctx, msg)
	case "departments":
		a.handleDepartments(ctx, msg)
	case "staff":
		a.handleStaff(ctx, msg)
	case "find":
		a.handleFind(ctx, msg)
	default:
		// unknown commands are ignored
	}
}

// reply sends text to the chat, optionally with HTML formatting.
func (a *App) reply(chatID int64, text string, html bool) {
	msg := tgbotapi.NewMessage(chatID, text)
	if html {
		msg.ParseMode = tgbotapi.ModeHTML
	}
	if _, err := a.bot.Send(msg); err != nil {
		a.log.Warn("reply failed", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (a *App) setCommands() {
	cmds := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "start", Description: "приветствие и подписка на дайджесты"},
		tgbotapi.BotCommand{Command: "help", Description: "список команд"},
		tgbotapi.BotCommand{Command: "company", Description: "информация о компании"},
		tgbotapi.BotCommand{Command: "team", Description: "состав команды"},
		tgbotapi.BotCommand{Command: "contacts", Description: "контакты сотрудников"},
		tgbotapi.BotCommand{Command: "events", Description: "предстоящие события"},
		tgbotapi.BotCommand{Command: "digest", Description: "сегодняшний дайджест"},
		tgbotapi.BotCommand{Command: "departments", Description: "отделы из файла сотрудников"},
		tgbotapi.BotCommand{Command: "staff", Description: "список сотрудников"},
		tgbotapi.BotCommand{Command: "find", Description: "поиск сотрудников"},
	)
	if _, err := a.bot.Request(cmds); err != nil {
		a.log.Warn("set commands", zap.Error(err))
	}
}
