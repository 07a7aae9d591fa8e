package router

import (
	"strings"
	"time"

	tg "github.com/pawfund/charitybot/core/telegram"
	"github.com/pawfund/charitybot/core/telegram/middleware"

	tele "gopkg.in/telebot.v4"
)

// WizardRouter captures text input for chats with a multi-step flow in progress.
type WizardRouter interface {
	InProgress(chatID int64) bool
	Handle(c tele.Context) error
}

// TextOptions controls fallback behaviour for text updates.
type TextOptions struct {
	UnknownText tele.HandlerFunc
}

// TextRoutes builds the handler for plain text routing.
//
// Slash commands always resolve through the registry so that flows can be
// abandoned mid-step. Any other text is consumed by an active wizard first,
// then matched against registered commands, then handed to the fallback.
func TextRoutes(wizard WizardRouter, reg *tg.Registry, opts TextOptions) []tg.Route {
	handler := func(c tele.Context) error {
		start := time.Now()
		text := c.Text()
		isCommand := strings.HasPrefix(text, "/")

		var chatID int64
		if chat := c.Chat(); chat != nil {
			chatID = chat.ID
		}

		if !isCommand && wizard != nil && wizard.InProgress(chatID) {
			return handleWithSummary(c, "wizard", start, "", "", func() error {
				return wizard.Handle(c)
			})
		}

		if reg != nil {
			if key, cmd, ok := reg.LookupCommand(text); ok && cmd.Handler != nil {
				name := normalizeHandlerName(key)
				return handleWithSummary(c, name, start, "", "", func() error {
					return cmd.Handler(c)
				})
			}
		}

		if reg != nil {
			if fb := reg.TextFallback(); fb != nil {
				return handleWithSummary(c, "fallback", start, "", "", func() error {
					return fb(c)
				})
			}
		}

		if opts.UnknownText != nil {
			return handleWithSummary(c, "unknown_text", start, "", "", func() error {
				return opts.UnknownText(c)
			})
		}

		logHandlerSummary(c, "unknown_text", start, "skip", "ok", nil)
		return nil
	}

	return []tg.Route{
		{
			Endpoint: tele.OnText,
			Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(handler)),
		},
	}
}
