package bot

import (
	"fmt"

	tele "gopkg.in/telebot.v4"

	"github.com/pawfund/charitybot/core/telegram/callbacks"
	"github.com/pawfund/charitybot/core/telegram/format"
	"github.com/pawfund/charitybot/core/telegram/helpers"
	"github.com/pawfund/charitybot/core/telegram/keyboard"
	"github.com/pawfund/charitybot/donation/i18n"
)

const projectCallbackKey = "project"

func (a *App) showProjects(c tele.Context, lang i18n.Language) error {
	keys := a.catalog.Keys()
	btns := make([]keyboard.InlineBtn, 0, len(keys))
	for _, key := range keys {
		p, ok := a.catalog.Get(key)
		if !ok {
			continue
		}
		btns = append(btns, keyboard.InlineBtn{
			Text:   p.Title.In(lang),
			Unique: projectCallbackKey,
			Data:   key,
		})
	}
	return helpers.SendText(c, i18n.T(lang, i18n.KeyChooseProject), &tele.SendOptions{ReplyMarkup: keyboard.InlineButtons(btns)})
}

// handleProjectCallback renders the project card in place of the inline
// project list. A key that has since been deleted is ignored; the button is
// just stale.
func (a *App) handleProjectCallback(c tele.Context) error {
	key := callbacks.CallbackPayload(c)
	p, ok := a.catalog.Get(key)
	if !ok {
		return nil
	}

	lang := a.sessions.Language(chatIDOf(c))
	title, _ := format.EscapeMarkdown(p.Title.In(lang), format.MarkdownV1)
	desc, _ := format.EscapeMarkdown(p.Description.In(lang), format.MarkdownV1)
	text := fmt.Sprintf("*%s*\n\n%s\n\n*%s:*\n`%s`",
		title,
		desc,
		i18n.T(lang, i18n.KeyRequisites),
		p.Requisites,
	)
	return helpers.EditOrSendMD(c, text)
}
