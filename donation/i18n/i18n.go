// Package i18n provides the compiled-in localization tables for the bot UI.
// Exactly two locales are supported; English is the fallback for any key
// that is missing a translation.
package i18n

// Language is a supported display-language code.
type Language string

const (
	// None marks a chat that has not picked a language yet.
	None Language = ""
	// EN is the English locale.
	EN Language = "en"
	// UA is the Ukrainian locale.
	UA Language = "ua"
)

// Valid reports whether the language is one of the supported locales.
func (l Language) Valid() bool {
	return l == EN || l == UA
}

// Key identifies a UI string in the localization table.
type Key string

const (
	// KeyProjects is the main-menu button opening the project list.
	KeyProjects Key = "Projects"
	// KeyHelp is the main-menu help button.
	KeyHelp Key = "Help"
	// KeyOptions is the main-menu options button.
	KeyOptions Key = "Options"
	// KeyReset is the options-submenu button that resets the session.
	KeyReset Key = "Reset"
	// KeyBack is the options-submenu button returning to the main menu.
	KeyBack Key = "BackToMenu"
	// KeyGreeting confirms the language selection.
	KeyGreeting Key = "Greeting"
	// KeyHelpText is the static help message.
	KeyHelpText Key = "HelpText"
	// KeyChooseProject heads the inline project list.
	KeyChooseProject Key = "ChooseProject"
	// KeyChooseOption heads the main menu.
	KeyChooseOption Key = "ChooseOption"
	// KeyOptionsPrompt heads the options submenu.
	KeyOptionsPrompt Key = "OptionsPrompt"
	// KeyRequisites labels the payment details block of a project view.
	KeyRequisites Key = "Requisites"
)

// Language-neutral strings shown before a locale is known. The reply-keyboard
// button labels double as the language-selection events.
const (
	ButtonEnglish   = "🇬🇧 English"
	ButtonUkrainian = "🇺🇦 Українська"
	LanguagePrompt  = "Please select your language / Будь ласка, оберіть мову:"
	LanguageGate    = "Please select a language first / Спочатку оберіть мову:"
)

// T returns the display string for key in lang, falling back to English when
// the locale is unknown, and to the key itself when the key is unknown.
func T(lang Language, key Key) string {
	byLang, ok := translations[key]
	if !ok {
		return string(key)
	}
	if s, ok := byLang[lang]; ok {
		return s
	}
	if s, ok := byLang[EN]; ok {
		return s
	}
	return string(key)
}

// Keys lists every key present in the localization table.
func Keys() []Key {
	out := make([]Key, 0, len(translations))
	for k := range translations {
		out = append(out, k)
	}
	return out
}
