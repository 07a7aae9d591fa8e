package bot

import (
	"strings"

	tele "gopkg.in/telebot.v4"

	"github.com/pawfund/charitybot/core/telegram/helpers"
	"github.com/pawfund/charitybot/core/telegram/keyboard"
	"github.com/pawfund/charitybot/donation/i18n"
)

func languageKeyboard() *tele.ReplyMarkup {
	return keyboard.OneTimeReplyButtons([]string{i18n.ButtonEnglish, i18n.ButtonUkrainian})
}

func mainMenuKeyboard(lang i18n.Language) *tele.ReplyMarkup {
	return keyboard.ReplyButtons(
		[]string{i18n.T(lang, i18n.KeyProjects), i18n.T(lang, i18n.KeyHelp)},
		[]string{i18n.T(lang, i18n.KeyOptions)},
	)
}

func optionsKeyboard(lang i18n.Language) *tele.ReplyMarkup {
	return keyboard.ReplyButtons(
		[]string{i18n.T(lang, i18n.KeyReset)},
		[]string{i18n.T(lang, i18n.KeyBack)},
	)
}

func (a *App) handleStart(c tele.Context) error {
	return a.promptLanguage(c, i18n.LanguagePrompt)
}

// handleRestart drops the whole session, wizard included, and returns the
// chat to the language prompt.
func (a *App) handleRestart(c tele.Context) error {
	a.sessions.Reset(chatIDOf(c))
	return a.promptLanguage(c, i18n.LanguagePrompt)
}

func (a *App) promptLanguage(c tele.Context, prompt string) error {
	return helpers.SendText(c, prompt, &tele.SendOptions{ReplyMarkup: languageKeyboard()})
}

// handleMenuText dispatches any plain text that is neither a command nor
// wizard input. Language buttons work in every state; everything else is
// gated behind a language selection.
func (a *App) handleMenuText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())

	switch text {
	case i18n.ButtonEnglish:
		return a.selectLanguage(c, i18n.EN)
	case i18n.ButtonUkrainian:
		return a.selectLanguage(c, i18n.UA)
	}

	lang := a.sessions.Language(chatIDOf(c))
	if !lang.Valid() {
		return a.promptLanguage(c, i18n.LanguageGate)
	}

	switch text {
	case i18n.T(lang, i18n.KeyProjects):
		return a.showProjects(c, lang)
	case i18n.T(lang, i18n.KeyHelp):
		return helpers.SendText(c, i18n.T(lang, i18n.KeyHelpText))
	case i18n.T(lang, i18n.KeyOptions):
		return helpers.SendText(c, i18n.T(lang, i18n.KeyOptionsPrompt), &tele.SendOptions{ReplyMarkup: optionsKeyboard(lang)})
	case i18n.T(lang, i18n.KeyReset):
		return a.handleRestart(c)
	case i18n.T(lang, i18n.KeyBack):
		return a.showMainMenu(c, lang)
	}

	// Unrecognized input falls back to the main menu.
	return a.showMainMenu(c, lang)
}

func (a *App) selectLanguage(c tele.Context, lang i18n.Language) error {
	a.sessions.SetLanguage(chatIDOf(c), lang)
	if err := helpers.SendText(c, i18n.T(lang, i18n.KeyGreeting)); err != nil {
		return err
	}
	return a.showMainMenu(c, lang)
}

func (a *App) showMainMenu(c tele.Context, lang i18n.Language) error {
	return helpers.SendText(c, i18n.T(lang, i18n.KeyChooseOption), &tele.SendOptions{ReplyMarkup: mainMenuKeyboard(lang)})
}
