package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/nkt-kyiv/Robot-dealer-for-card-games/internal/config"
	"github.com/nkt-kyiv/Robot-dealer-for-card-games/internal/game"
	"github.com/nkt-kyiv/Robot-dealer-for-card-games/internal/player"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Sender is the part of the Telegram API the handler talks to.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Handler struct {
	bot     Sender
	cfg     *config.Config
	players player.Repository
	tables  *game.Manager
	log     *zap.Logger
}

func NewHandler(bot Sender, cfg *config.Config, repo player.Repository, tables *game.Manager, log *zap.Logger) *Handler {
	return &Handler{
		bot:     bot,
		cfg:     cfg,
		players: repo,
		tables:  tables,
		log:     log,
	}
}

func sessionID(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}

// ============== helpers ==============

func (h *Handler) send(chatID int64, text string) {
	if _, err := h.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		h.log.Warn("failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (h *Handler) sendWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := h.bot.Send(msg); err != nil {
		h.log.Warn("failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		h.log.Debug("failed to answer callback", zap.Error(err))
	}
}

func (h *Handler) getPlayer(ctx context.Context, chatID int64) (*player.Player, error) {
	return h.players.GetOrCreate(ctx, chatID, h.cfg.DefaultBet)
}

func (h *Handler) savePlayer(ctx context.Context, p *player.Player) {
	if err := h.players.Save(ctx, p); err != nil {
		h.log.Error("failed to save player", zap.Int64("chat_id", p.ChatID), zap.Error(err))
	}
}

// bankroll reads the chat's balance, opening a table for new chats.
func (h *Handler) bankroll(chatID int64) int {
	var balance int
	_ = h.tables.Do(sessionID(chatID), func(t *game.Table) error {
		balance = t.Bankroll()
		return nil
	})
	return balance
}

// ============== commands ==============

func (h *Handler) HandleStart(chatID int64) {
	h.send(chatID, fmt.Sprintf(
		"🎰 Welcome to Blackjack!\n\n"+
			"💵 Balance: %d\n\n"+
			"/deal <bet> — play a round\n"+
			"/balance — balance and stats\n"+
			"/history — your last rounds\n"+
			"/top — top players\n"+
			"/help — rules",
		h.bankroll(chatID)))
}

func (h *Handler) HandleHelp(chatID int64) {
	h.send(chatID,
		"📖 Blackjack rules:\n\n"+
			"🎯 Get closer to 21 than the dealer without going over\n\n"+
			"📊 Points:\n"+
			"• 2-10 — face value\n"+
			"• J, Q, K — 10\n"+
			"• A — 11 or 1\n\n"+
			"🎮 Moves:\n"+
			"• Hit — take a card\n"+
			"• Stand — stop; the dealer draws to 17\n"+
			"• Double — double the bet, take one card and stand\n"+
			"• Split — split a pair into two hands\n"+
			"• Switch hand — move between split hands\n\n"+
			"💰 A win pays 2× the bet, a tie returns it")
}

func (h *Handler) HandleBalance(ctx context.Context, chatID int64) {
	p, err := h.getPlayer(ctx, chatID)
	if err != nil {
		h.log.Error("failed to load player", zap.Int64("chat_id", chatID), zap.Error(err))
		h.send(chatID, errorText(err))
		return
	}

	h.send(chatID, fmt.Sprintf(
		"💰 Balance: %d\n\n"+
			"📊 Stats:\n"+
			"🎮 Games: %d\n"+
			"✅ Wins: %d (%.1f%%)\n"+
			"❌ Losses: %d\n"+
			"🤝 Pushes: %d",
		h.bankroll(chatID), p.Games, p.Wins, p.WinRate(), p.Losses, p.Pushes))
}

func (h *Handler) HandleTop(ctx context.Context, chatID int64) {
	stats, err := h.players.GetTop(ctx, 10)
	if err != nil {
		h.log.Error("failed to load top", zap.Error(err))
		h.send(chatID, errorText(err))
		return
	}

	if len(stats) == 0 {
		h.send(chatID, "🏆 Nobody has played yet!")
		return
	}

	var sb strings.Builder
	sb.WriteString("🏆 Top players:\n\n")

	medals := []string{"🥇", "🥈", "🥉"}
	for i, s := range stats {
		medal := fmt.Sprintf("%d.", i+1)
		if i < 3 {
			medal = medals[i]
		}
		sb.WriteString(fmt.Sprintf("%s %d wins | %d games (%.0f%%)\n",
			medal, s.Wins, s.Games, s.WinRate))
	}

	h.send(chatID, sb.String())
}

func (h *Handler) HandleHistory(ctx context.Context, chatID int64) {
	rounds, err := h.players.History(ctx, chatID, 5)
	if err != nil {
		h.log.Error("failed to load history", zap.Int64("chat_id", chatID), zap.Error(err))
		h.send(chatID, errorText(err))
		return
	}

	if len(rounds) == 0 {
		h.send(chatID, "📜 No rounds played yet")
		return
	}

	var sb strings.Builder
	sb.WriteString("📜 Last rounds:\n")
	for _, r := range rounds {
		sb.WriteString(fmt.Sprintf("\n%s bet %d → %d\n%s\n",
			r.PlayedAt.Format("02.01 15:04"), r.Bet, r.Payout, r.Outcome))
	}
	h.send(chatID, sb.String())
}

func (h *Handler) HandleDeal(ctx context.Context, chatID int64, args []string) {
	var bet int
	if len(args) > 0 {
		var err error
		if bet, err = game.ParseBet(args[0]); err != nil {
			h.send(chatID, fmt.Sprintf("❌ Invalid bet. Example: /deal %d", h.cfg.DefaultBet))
			return
		}
	}

	// Player rows change only under the table lock; see finishRound.
	var (
		snap    game.Snapshot
		loadErr error
	)
	err := h.tables.Do(sessionID(chatID), func(t *game.Table) error {
		p, err := h.getPlayer(ctx, chatID)
		if err != nil {
			loadErr = err
			return err
		}
		if len(args) == 0 {
			bet = p.LastBet
		}

		if snap, err = t.PlaceBet(bet); err != nil {
			return err
		}

		p.LastBet = bet
		h.savePlayer(ctx, p)
		return nil
	})
	if loadErr != nil {
		h.log.Error("failed to load player", zap.Int64("chat_id", chatID), zap.Error(loadErr))
		h.send(chatID, errorText(loadErr))
		return
	}
	if err != nil {
		h.send(chatID, fmt.Sprintf("%s\n💵 Balance: %d", errorText(err), snap.Bankroll))
		return
	}

	h.log.Info("round started",
		zap.Int64("chat_id", chatID),
		zap.String("round_id", snap.RoundID),
		zap.Int("bet", bet))

	h.sendWithKeyboard(chatID, formatGameStatus(snap), GameKeyboard(game.LegalActions(snap)))
}

// ============== callbacks ==============

func (h *Handler) HandleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil || callback.Message.Chat == nil {
		h.answerCallback(callback.ID, "")
		return
	}
	chatID := callback.Message.Chat.ID

	switch callback.Data {
	case CallbackPlayAgain:
		h.answerCallback(callback.ID, "")
		h.HandleDeal(ctx, chatID, nil)
		return

	case CallbackBalance:
		h.answerCallback(callback.ID, fmt.Sprintf("💵 %d", h.bankroll(chatID)))
		return
	}

	action := game.Action(callback.Data)

	var snap game.Snapshot
	err := h.tables.With(sessionID(chatID), func(t *game.Table) error {
		var err error
		if snap, err = t.Do(action); err != nil {
			return err
		}
		if snap.Phase == game.PhaseResolved {
			h.finishRound(ctx, chatID, snap)
		}
		return nil
	})
	if err != nil {
		h.log.Debug("action rejected",
			zap.Int64("chat_id", chatID),
			zap.String("action", callback.Data),
			zap.Error(err))
		h.answerCallback(callback.ID, errorText(err))
		return
	}

	h.answerCallback(callback.ID, "")

	if snap.Phase == game.PhaseResolved {
		lastBet := h.cfg.DefaultBet
		if p, err := h.getPlayer(ctx, chatID); err == nil {
			lastBet = p.LastBet
		}
		h.sendWithKeyboard(chatID, formatGameEnd(snap), EndGameKeyboard(lastBet))
		return
	}

	text := formatGameStatus(snap)
	if action == game.ActionStand && snap.Active == game.HandSplit {
		text = "🔀 Switching to split hand\n\n" + text
	}
	h.sendWithKeyboard(chatID, text, GameKeyboard(game.LegalActions(snap)))
}

// finishRound stores the statistics of a resolved round. It runs while the
// table is locked so updates of one chat never interleave.
func (h *Handler) finishRound(ctx context.Context, chatID int64, snap game.Snapshot) {
	p, err := h.getPlayer(ctx, chatID)
	if err != nil {
		h.log.Error("failed to load player", zap.Int64("chat_id", chatID), zap.Error(err))
		return
	}

	p.Record(snap.Results)
	h.savePlayer(ctx, p)

	if err := h.players.RecordRound(ctx, player.RoundFromSnapshot(chatID, snap)); err != nil {
		h.log.Error("failed to record round", zap.String("round_id", snap.RoundID), zap.Error(err))
	}

	h.log.Info("round finished",
		zap.Int64("chat_id", chatID),
		zap.String("round_id", snap.RoundID),
		zap.String("outcome", snap.Outcome),
		zap.Int("bankroll", snap.Bankroll))
}

// ============== messages ==============

func (h *Handler) HandleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.Chat == nil {
		return
	}
	chatID := msg.Chat.ID
	parts := strings.Fields(msg.Text)

	if len(parts) == 0 {
		return
	}

	cmd := strings.ToLower(parts[0])
	if i := strings.Index(cmd, "@"); i > 0 {
		cmd = cmd[:i]
	}
	args := parts[1:]

	switch cmd {
	case "/start":
		h.HandleStart(chatID)
	case "/help":
		h.HandleHelp(chatID)
	case "/deal", "/play":
		h.HandleDeal(ctx, chatID, args)
	case "/balance", "/stats":
		h.HandleBalance(ctx, chatID)
	case "/history":
		h.HandleHistory(ctx, chatID)
	case "/top":
		h.HandleTop(ctx, chatID)
	}
}
