package bot

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v4"

	coreconfig "github.com/pawfund/charitybot/core/config"
	coretelegram "github.com/pawfund/charitybot/core/telegram"
	"github.com/pawfund/charitybot/donation/catalog"
	"github.com/pawfund/charitybot/donation/i18n"
)

type sent struct {
	what any
	opts []any
}

// fakeContext implements the handful of tele.Context methods the handlers
// touch. Everything else panics via the nil embedded interface, which is
// exactly what we want in a test.
type fakeContext struct {
	tele.Context
	chat     *tele.Chat
	sender   *tele.User
	text     string
	args     []string
	callback *tele.Callback
	store    map[string]any
	outbox   []sent
	edited   int
}

func (f *fakeContext) Chat() *tele.Chat         { return f.chat }
func (f *fakeContext) Sender() *tele.User       { return f.sender }
func (f *fakeContext) Text() string             { return f.text }
func (f *fakeContext) Args() []string           { return f.args }
func (f *fakeContext) Callback() *tele.Callback { return f.callback }
func (f *fakeContext) Update() tele.Update      { return tele.Update{} }

func (f *fakeContext) Set(key string, value any) {
	if f.store == nil {
		f.store = make(map[string]any)
	}
	f.store[key] = value
}

func (f *fakeContext) Get(key string) any { return f.store[key] }

func (f *fakeContext) Send(what interface{}, opts ...interface{}) error {
	f.outbox = append(f.outbox, sent{what: what, opts: opts})
	return nil
}

func (f *fakeContext) EditOrSend(what interface{}, opts ...interface{}) error {
	f.outbox = append(f.outbox, sent{what: what, opts: opts})
	f.edited++
	return nil
}

func (f *fakeContext) texts() []string {
	var out []string
	for _, m := range f.outbox {
		if s, ok := m.what.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func (f *fakeContext) lastMarkup() *tele.ReplyMarkup {
	if len(f.outbox) == 0 {
		return nil
	}
	for _, o := range f.outbox[len(f.outbox)-1].opts {
		if so, ok := o.(*tele.SendOptions); ok {
			return so.ReplyMarkup
		}
	}
	return nil
}

func ctxFor(chatID int64, text string) *fakeContext {
	return &fakeContext{
		chat:   &tele.Chat{ID: chatID},
		sender: &tele.User{ID: chatID},
		text:   text,
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	store, err := catalog.Open(filepath.Join(t.TempDir(), "projects.json"))
	require.NoError(t, err)
	cfg := &coreconfig.Config{}
	cfg.Telegram.Token = "test"
	cfg.Telegram.AdminIDs = []int64{99}
	require.NoError(t, coreconfig.Normalize(cfg))
	return New(cfg, store)
}

func TestStartPromptsLanguage(t *testing.T) {
	app := newTestApp(t)
	c := ctxFor(1, "/start")

	require.NoError(t, app.handleStart(c))

	require.Len(t, c.outbox, 1)
	assert.Equal(t, i18n.LanguagePrompt, c.outbox[0].what)
	require.NotNil(t, c.lastMarkup())
	assert.True(t, c.lastMarkup().OneTimeKeyboard)
}

func TestLanguageSelectionGreetsAndShowsMenu(t *testing.T) {
	app := newTestApp(t)
	c := ctxFor(1, i18n.ButtonUkrainian)

	require.NoError(t, app.handleMenuText(c))

	texts := c.texts()
	require.Len(t, texts, 2)
	assert.Equal(t, i18n.T(i18n.UA, i18n.KeyGreeting), texts[0])
	assert.Equal(t, i18n.T(i18n.UA, i18n.KeyChooseOption), texts[1])
	assert.Equal(t, i18n.UA, app.sessions.Language(1))
}

func TestMenuGateBeforeLanguage(t *testing.T) {
	app := newTestApp(t)
	c := ctxFor(1, "📂 Projects")

	require.NoError(t, app.handleMenuText(c))

	require.Len(t, c.outbox, 1)
	assert.Equal(t, i18n.LanguageGate, c.outbox[0].what)
}

func TestProjectsMenuListsCatalog(t *testing.T) {
	app := newTestApp(t)
	app.sessions.SetLanguage(1, i18n.EN)
	c := ctxFor(1, i18n.T(i18n.EN, i18n.KeyProjects))

	require.NoError(t, app.handleMenuText(c))

	require.Len(t, c.outbox, 1)
	assert.Equal(t, i18n.T(i18n.EN, i18n.KeyChooseProject), c.outbox[0].what)
	markup := c.lastMarkup()
	require.NotNil(t, markup)
	require.Len(t, markup.InlineKeyboard, 2)
	// Keys are sorted, so food precedes shelter.
	assert.Equal(t, "🍖 Food for Rescued Animals", markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, "🐾 Animal Shelter Construction", markup.InlineKeyboard[1][0].Text)
}

func TestProjectCallbackRendersCard(t *testing.T) {
	app := newTestApp(t)
	app.sessions.SetLanguage(1, i18n.UA)
	c := ctxFor(1, "")
	c.callback = &tele.Callback{Data: "\fproject|shelter"}

	require.NoError(t, app.handleProjectCallback(c))

	texts := c.texts()
	require.Len(t, texts, 1)
	assert.Contains(t, texts[0], "*🐾 Будівництво Притулку*")
	assert.Contains(t, texts[0], "IBAN: UA123456789")
	assert.Contains(t, texts[0], i18n.T(i18n.UA, i18n.KeyRequisites))
	// The card replaces the project-list message rather than following it.
	assert.Equal(t, 1, c.edited)
}

func TestProjectCallbackUnknownKeyIsSilent(t *testing.T) {
	app := newTestApp(t)
	c := ctxFor(1, "")
	c.callback = &tele.Callback{Data: "\fproject|ghost"}

	require.NoError(t, app.handleProjectCallback(c))
	assert.Empty(t, c.outbox)
}

func TestResetClearsLanguage(t *testing.T) {
	app := newTestApp(t)
	app.sessions.SetLanguage(1, i18n.EN)
	c := ctxFor(1, i18n.T(i18n.EN, i18n.KeyReset))

	require.NoError(t, app.handleMenuText(c))

	assert.Equal(t, i18n.None, app.sessions.Language(1))
	require.Len(t, c.outbox, 1)
	assert.Equal(t, i18n.LanguagePrompt, c.outbox[0].what)
}

func TestAddProjectWizardFullFlow(t *testing.T) {
	app := newTestApp(t)
	chatID := int64(99)

	start := ctxFor(chatID, "/add_project vet")
	start.args = []string{"vet"}
	require.NoError(t, app.handleAddProject(start))
	require.Len(t, start.texts(), 1)
	assert.Equal(t, "Send the project title (EN):", start.texts()[0])
	assert.True(t, app.sessions.WizardInProgress(chatID))

	inputs := []string{
		"🩺 Vet Care Fund",
		"🩺 Фонд ветеринарної допомоги",
		"Covers surgeries and vaccines.",
		"Оплата операцій та вакцин.",
		"IBAN: UA999",
	}
	prompts := []string{
		"Send the project title (UA):",
		"Send the description (EN):",
		"Send the description (UA):",
		"Send the payment requisites:",
	}
	for i, input := range inputs {
		c := ctxFor(chatID, input)
		require.NoError(t, app.handleWizardInput(c))
		texts := c.texts()
		require.Len(t, texts, 1)
		if i < len(prompts) {
			assert.Equal(t, prompts[i], texts[0])
		} else {
			assert.Equal(t, `✅ Project "vet" added.`, texts[0])
		}
	}

	assert.False(t, app.sessions.WizardInProgress(chatID))
	p, ok := app.catalog.Get("vet")
	require.True(t, ok)
	assert.Equal(t, "🩺 Vet Care Fund", p.Title.EN)
	assert.Equal(t, "Оплата операцій та вакцин.", p.Description.UA)
	assert.Equal(t, "IBAN: UA999", p.Requisites)
}

func TestAddProjectRejectsDuplicateKey(t *testing.T) {
	app := newTestApp(t)
	c := ctxFor(99, "/add_project shelter")
	c.args = []string{"shelter"}

	require.NoError(t, app.handleAddProject(c))

	assert.Equal(t, []string{`Project "shelter" already exists.`}, c.texts())
	assert.False(t, app.sessions.WizardInProgress(99))
}

func TestAddProjectRequiresKey(t *testing.T) {
	app := newTestApp(t)
	c := ctxFor(99, "/add_project")

	require.NoError(t, app.handleAddProject(c))
	assert.Equal(t, []string{"Usage: /add_project <key>"}, c.texts())
}

func TestRestartAbandonsWizard(t *testing.T) {
	app := newTestApp(t)
	app.sessions.StartWizard(99, "vet")

	c := ctxFor(99, "/restart")
	require.NoError(t, app.handleRestart(c))

	assert.False(t, app.sessions.WizardInProgress(99))
	assert.False(t, app.catalog.Has("vet"))
}

func TestDeleteProject(t *testing.T) {
	app := newTestApp(t)

	c := ctxFor(99, "/delete_project shelter")
	c.args = []string{"shelter"}
	require.NoError(t, app.handleDeleteProject(c))
	assert.Equal(t, []string{`🗑 Project "shelter" deleted.`}, c.texts())
	assert.False(t, app.catalog.Has("shelter"))

	again := ctxFor(99, "/delete_project shelter")
	again.args = []string{"shelter"}
	require.NoError(t, app.handleDeleteProject(again))
	assert.Equal(t, []string{`Project "shelter" not found.`}, again.texts())
}

func TestListProjects(t *testing.T) {
	app := newTestApp(t)
	c := ctxFor(99, "/list_projects")

	require.NoError(t, app.handleListProjects(c))

	texts := c.texts()
	require.Len(t, texts, 1)
	assert.Contains(t, texts[0], "• food\n  EN: 🍖 Food for Rescued Animals\n  UA: 🍖 Їжа для урятованих тварин")
	assert.Contains(t, texts[0], "• shelter\n  EN: 🐾 Animal Shelter Construction\n  UA: 🐾 Будівництво Притулку")
}

func routeFor(t *testing.T, opts coretelegram.RunOptions, endpoint string) tele.HandlerFunc {
	t.Helper()
	for _, r := range opts.Routes {
		if r.Endpoint == endpoint {
			return r.Handler
		}
	}
	t.Fatalf("no route for %s", endpoint)
	return nil
}

func TestAdminCommandRejectsUnauthorizedSender(t *testing.T) {
	app := newTestApp(t)
	opts, err := app.TelegramRunOptions()
	require.NoError(t, err)

	for _, endpoint := range []string{"/admin", "/add_project", "/delete_project", "/list_projects"} {
		c := ctxFor(12345, endpoint)
		require.NoError(t, routeFor(t, opts, endpoint)(c))
		assert.Equal(t, []string{adminRejectText}, c.texts(), endpoint)
	}
}

func TestAdminCommandAllowsListedSender(t *testing.T) {
	app := newTestApp(t)
	opts, err := app.TelegramRunOptions()
	require.NoError(t, err)

	c := ctxFor(99, "/admin")
	require.NoError(t, routeFor(t, opts, "/admin")(c))

	texts := c.texts()
	require.Len(t, texts, 1)
	assert.Contains(t, texts[0], "Admin commands:")
}

func TestDeleteProjectWithoutKeyListsDeletable(t *testing.T) {
	app := newTestApp(t)
	c := ctxFor(99, "/delete_project")

	require.NoError(t, app.handleDeleteProject(c))

	texts := c.texts()
	require.Len(t, texts, 1)
	assert.Equal(t, "Deletable projects:\n/delete_project food\n/delete_project shelter", texts[0])
	assert.True(t, app.catalog.Has("food"))
	assert.True(t, app.catalog.Has("shelter"))
}

func TestAdminSummaryCounts(t *testing.T) {
	app := newTestApp(t)
	app.sessions.Track(1)
	app.sessions.Track(2)
	c := ctxFor(99, "/admin")

	require.NoError(t, app.handleAdmin(c))

	texts := c.texts()
	require.Len(t, texts, 1)
	assert.Contains(t, texts[0], fmt.Sprintf("Projects: %d", app.catalog.Len()))
	assert.Contains(t, texts[0], "Known chats: 2")
}

func TestRunOptionsWiring(t *testing.T) {
	app := newTestApp(t)

	opts, err := app.TelegramRunOptions()
	require.NoError(t, err)

	require.NotNil(t, opts.Registry)
	for _, cmd := range []string{"/start", "/restart", "/admin", "/add_project", "/delete_project", "/list_projects"} {
		_, _, ok := opts.Registry.LookupCommand(cmd)
		assert.True(t, ok, cmd)
	}
	_, ok := opts.Registry.GetCallback(projectCallbackKey)
	assert.True(t, ok)
	assert.NotNil(t, opts.Registry.TextFallback())
	assert.NotEmpty(t, opts.Routes)
	assert.NotNil(t, opts.OnStart)

	visible := opts.Registry.ListCommands(true)
	for _, cmd := range visible {
		assert.NotContains(t, []string{"/admin", "/add_project", "/delete_project", "/list_projects"}, cmd.Text)
	}
}
