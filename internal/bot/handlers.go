package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"solojack/internal/config"
	"solojack/internal/game"
	"solojack/internal/stats"
)

// Sender is the part of *tgbotapi.BotAPI the handler talks to.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Handler struct {
	bot    Sender
	games  *game.Manager
	rounds stats.Repository
	render renderer
	logger *log.Logger
}

func NewHandler(bot Sender, cfg *config.Config, games *game.Manager, rounds stats.Repository, logger *log.Logger) *Handler {
	return &Handler{
		bot:    bot,
		games:  games,
		rounds: rounds,
		render: renderer{assetBase: cfg.AssetBaseURL},
		logger: logger,
	}
}

// ============== helpers ==============

func (h *Handler) send(chatID int64, text string) {
	if _, err := h.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		h.logger.Error("failed to send message", "chat", chatID, "error", err)
	}
}

func (h *Handler) sendRound(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	msg.ReplyMarkup = kb
	if _, err := h.bot.Send(msg); err != nil {
		h.logger.Error("failed to send round", "chat", chatID, "error", err)
	}
}

func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		h.logger.Debug("failed to answer callback", "error", err)
	}
}

func formatTally(t stats.Tally) string {
	return fmt.Sprintf(
		"📊 Stats:\n"+
			"🎮 Rounds: %d\n"+
			"✅ Wins: %d (%.1f%%)\n"+
			"❌ Losses: %d\n"+
			"🤝 Draws: %d\n"+
			"🎰 Blackjacks: %d",
		t.Games, t.Wins, t.WinRate(), t.Losses, t.Draws, t.Blackjacks)
}

// ============== commands ==============

func (h *Handler) HandleStart(chatID int64) {
	h.send(chatID,
		"🎰 Welcome to Blackjack!\n\n"+
			"/play — deal a new round\n"+
			"/stats — your results\n"+
			"/top — leaderboard\n"+
			"/help — rules")
}

func (h *Handler) HandleHelp(chatID int64) {
	dealer := "The dealer takes one card if at 16 or less when you stand."
	if h.games.Policy() == game.DealerHitToSeventeen {
		dealer = "The dealer draws until above 16 when you stand."
	}

	h.send(chatID,
		"📖 Rules:\n\n"+
			"🎯 Beat the dealer's score without going over 21\n\n"+
			"📊 Points:\n"+
			"• 2-10 — face value\n"+
			"• J, Q, K — 10\n"+
			"• A — 11 or 1\n\n"+
			"🎰 Blackjack is an ace with J, Q or K as the first two cards.\n"+
			"🎩 "+dealer)
}

func (h *Handler) HandleStats(ctx context.Context, chatID int64) {
	t, err := h.rounds.Get(ctx, chatID)
	if err != nil {
		h.logger.Error("failed to load stats", "chat", chatID, "error", err)
		h.send(chatID, "❌ Error")
		return
	}
	h.send(chatID, formatTally(t))
}

func (h *Handler) HandleTop(ctx context.Context, chatID int64) {
	top, err := h.rounds.Top(ctx, 10)
	if err != nil {
		h.logger.Error("failed to load top", "error", err)
		h.send(chatID, "❌ Error")
		return
	}

	if len(top) == 0 {
		h.send(chatID, "🏆 Nobody has played yet!")
		return
	}

	var sb strings.Builder
	sb.WriteString("🏆 Top players:\n\n")

	medals := []string{"🥇", "🥈", "🥉"}
	for i, t := range top {
		medal := fmt.Sprintf("%d.", i+1)
		if i < 3 {
			medal = medals[i]
		}
		fmt.Fprintf(&sb, "%s %d wins | %d rounds (%.0f%%)\n", medal, t.Wins, t.Games, t.WinRate())
	}

	h.send(chatID, sb.String())
}

// HandlePlay deals a fresh round, dropping whatever the chat had before.
func (h *Handler) HandlePlay(chatID int64) {
	s := h.games.Deal(chatID)
	h.logger.Debug("round dealt", "chat", chatID, "player", s.PlayerHand, "deck", s.CardsRemaining())
	h.sendRound(chatID, h.render.round(s), GameKeyboard())
}

// ============== callbacks ==============

func (h *Handler) HandleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil || callback.Message.Chat == nil {
		h.answerCallback(callback.ID, "")
		return
	}
	chatID := callback.Message.Chat.ID

	switch callback.Data {
	case CallbackNewRound:
		h.answerCallback(callback.ID, "")
		h.HandlePlay(chatID)
	case CallbackStats:
		t, err := h.rounds.Get(ctx, chatID)
		if err != nil {
			h.logger.Error("failed to load stats", "chat", chatID, "error", err)
			h.answerCallback(callback.ID, "Error")
			return
		}
		h.answerCallback(callback.ID, fmt.Sprintf("✅ %d | ❌ %d | 🤝 %d", t.Wins, t.Losses, t.Draws))
	case CallbackHit:
		h.handleAction(ctx, callback, h.games.Hit)
	case CallbackStand:
		h.handleAction(ctx, callback, h.games.Stand)
	default:
		h.answerCallback(callback.ID, "")
	}
}

func (h *Handler) handleAction(ctx context.Context, callback *tgbotapi.CallbackQuery, action func(int64) (game.State, error)) {
	chatID := callback.Message.Chat.ID

	s, err := action(chatID)
	switch {
	case errors.Is(err, game.ErrNoActiveRound), errors.Is(err, game.ErrRoundOver):
		h.answerCallback(callback.ID, "Round is not active")
		return
	case err != nil:
		h.logger.Error("action failed", "chat", chatID, "action", callback.Data, "error", err)
		h.answerCallback(callback.ID, "")
		h.send(chatID, "❌ The deck ran out. Start a new round with /play")
		return
	}

	h.answerCallback(callback.ID, "")

	if !s.IsFinished() {
		h.sendRound(chatID, h.render.round(s), GameKeyboard())
		return
	}

	h.finishRound(ctx, chatID, s)
	h.sendRound(chatID, h.render.round(s), EndGameKeyboard())
}

func (h *Handler) finishRound(ctx context.Context, chatID int64, s game.State) {
	res := s.Outcome()
	blackjack := res == game.ResultPlayerWin && s.PlayerHand.IsBlackjack()

	h.logger.Info("round finished",
		"chat", chatID,
		"result", res,
		"player", s.PlayerScore(),
		"dealer", s.DealerScore(),
		"policy", h.games.Policy())

	if err := h.rounds.Record(ctx, chatID, res, blackjack); err != nil {
		h.logger.Error("failed to record round", "chat", chatID, "error", err)
	}
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

	// commands may arrive as /play@botname in groups
	cmd, _, _ := strings.Cut(strings.ToLower(parts[0]), "@")

	switch cmd {
	case "/start":
		h.HandleStart(chatID)
	case "/help":
		h.HandleHelp(chatID)
	case "/play", "/reset":
		h.HandlePlay(chatID)
	case "/stats":
		h.HandleStats(ctx, chatID)
	case "/top":
		h.HandleTop(ctx, chatID)
	}
}
