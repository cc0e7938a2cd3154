package bot

import (
	"fmt"

	"github.com/nkt-kyiv/Robot-dealer-for-card-games/internal/game"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	CallbackHit       = string(game.ActionHit)
	CallbackStand     = string(game.ActionStand)
	CallbackDouble    = string(game.ActionDouble)
	CallbackSplit     = string(game.ActionSplit)
	CallbackSwitch    = string(game.ActionSwitch)
	CallbackPlayAgain = "play_again"
	CallbackBalance   = "balance"
)

var actionLabels = map[game.Action]string{
	game.ActionHit:    "👊 Hit",
	game.ActionStand:  "✋ Stand",
	game.ActionDouble: "💰 Double",
	game.ActionSplit:  "✂️ Split",
	game.ActionSwitch: "🔀 Switch hand",
}

// GameKeyboard shows one button per legal in-round action. Deal is offered
// only once the round is over, through EndGameKeyboard.
func GameKeyboard(actions []game.Action) tgbotapi.InlineKeyboardMarkup {
	var row []tgbotapi.InlineKeyboardButton
	for _, a := range actions {
		label, ok := actionLabels[a]
		if !ok {
			continue
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, string(a)))
	}

	if len(row) > 3 {
		return tgbotapi.NewInlineKeyboardMarkup(row[:3], row[3:])
	}
	return tgbotapi.NewInlineKeyboardMarkup(row)
}

func EndGameKeyboard(lastBet int) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("🔄 Again (%d)", lastBet),
				CallbackPlayAgain,
			),
			tgbotapi.NewInlineKeyboardButtonData("💵 Balance", CallbackBalance),
		),
	)
}
