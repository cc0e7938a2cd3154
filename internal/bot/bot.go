package bot

import (
	"context"

	"github.com/nkt-kyiv/Robot-dealer-for-card-games/internal/config"
	"github.com/nkt-kyiv/Robot-dealer-for-card-games/internal/game"
	"github.com/nkt-kyiv/Robot-dealer-for-card-games/internal/player"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Bot struct {
	api     *tgbotapi.BotAPI
	handler *Handler
	log     *zap.Logger
}

func New(cfg *config.Config, repo player.Repository, log *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}

	tables := game.NewManager(func() *game.Table {
		return game.NewTable(cfg.StartBalance)
	})

	return &Bot{
		api:     api,
		handler: NewHandler(api, cfg, repo, tables, log),
		log:     log,
	}, nil
}

// Run polls for updates until ctx is cancelled. Every update is handled on
// its own goroutine; the table manager serializes updates of one chat.
func (b *Bot) Run(ctx context.Context) error {
	b.log.Info("bot started", zap.String("username", b.api.Self.UserName))

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.log.Info("bot stopped")
			return nil

		case update, ok := <-updates:
			if !ok {
				return nil
			}

			if update.CallbackQuery != nil {
				go b.handler.HandleCallback(ctx, update.CallbackQuery)
				continue
			}

			if update.Message != nil {
				go b.handler.HandleMessage(ctx, update.Message)
			}
		}
	}
}
