// Package bot assembles the charity donation bot: the language and main-menu
// flows for visitors, the project catalog browser, the admin authoring
// commands, and the periodic reminder broadcast.
package bot

import (
	"context"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/pawfund/charitybot/broadcast"
	coreconfig "github.com/pawfund/charitybot/core/config"
	coretelegram "github.com/pawfund/charitybot/core/telegram"
	"github.com/pawfund/charitybot/core/telegram/commands"
	"github.com/pawfund/charitybot/core/telegram/router"
	"github.com/pawfund/charitybot/donation/catalog"
	"github.com/pawfund/charitybot/donation/session"
)

// App wires configuration, the project catalog, and per-chat sessions into a
// runnable Telegram bot.
type App struct {
	cfg      *coreconfig.Config
	catalog  *catalog.Store
	sessions *session.Registry
}

// New builds the application from bootstrapped infrastructure.
func New(cfg *coreconfig.Config, store *catalog.Store) *App {
	return &App{
		cfg:      cfg,
		catalog:  store,
		sessions: session.NewRegistry(),
	}
}

// CoreConfig exposes the embedded core configuration.
func (a *App) CoreConfig() *coreconfig.Config {
	return a.cfg
}

// TelegramRunOptions assembles the registry, routes, and lifecycle hooks for
// the bot runtime.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	reg := coretelegram.NewRegistry()
	a.registerCommands(reg)
	_ = reg.RegisterCallback(projectCallbackKey, a.handleProjectCallback)
	reg.SetTextFallback(a.handleMenuText)

	routes := router.TextRoutes(wizardRouter{app: a}, reg, router.TextOptions{})
	routes = append(routes, router.CallbackRoute(reg, router.CallbackOptions{}))
	routes = append(routes, router.CommandRoutes(reg, router.CommandRouteOptions{
		AdminIDs:      a.cfg.Telegram.AdminIDs,
		OnAdminReject: handleAdminReject,
	})...)

	mws := coretelegram.DefaultMiddlewares(a.cfg, nil)
	mws = append(mws, coretelegram.Middleware{Name: "track", Use: a.trackMiddleware})

	return coretelegram.RunOptions{
		Config:      a.cfg,
		Registry:    reg,
		Middlewares: mws,
		Routes:      routes,
		OnStart: func(ctx context.Context, rt coretelegram.Runtime) error {
			go a.newScheduler(rt.Bot).Run(ctx)
			return nil
		},
	}, nil
}

func (a *App) registerCommands(reg *coretelegram.Registry) {
	reg.RegisterCommand("/start", commands.Command{
		Handler:     a.handleStart,
		Description: "Start the bot and pick a language",
	})
	reg.RegisterCommand("/restart", commands.Command{
		Handler:     a.handleRestart,
		Description: "Reset the conversation",
	})
	reg.RegisterCommand("/admin", commands.Command{
		Handler:     a.handleAdmin,
		Description: "Show admin commands",
		AdminOnly:   true,
		Hidden:      true,
	})
	reg.RegisterCommand("/add_project", commands.Command{
		Handler:     a.handleAddProject,
		Description: "Add a donation project",
		AdminOnly:   true,
		Hidden:      true,
	})
	reg.RegisterCommand("/delete_project", commands.Command{
		Handler:     a.handleDeleteProject,
		Description: "Delete a donation project",
		AdminOnly:   true,
		Hidden:      true,
	})
	reg.RegisterCommand("/list_projects", commands.Command{
		Handler:     a.handleListProjects,
		Description: "List donation projects",
		AdminOnly:   true,
		Hidden:      true,
	})
}

func (a *App) newScheduler(bot *tele.Bot) *broadcast.Scheduler {
	interval := broadcast.DefaultInterval
	if m := a.cfg.Broadcast.IntervalMinutes; m > 0 {
		interval = time.Duration(m) * time.Minute
	}
	pool := broadcast.NewPool(a.cfg.Broadcast.PhotosDir)
	return broadcast.NewScheduler(&telegramSender{bot: bot}, a.sessions, pool, interval)
}

// trackMiddleware records every chat that ever talks to the bot so the
// broadcast can reach it later.
func (a *App) trackMiddleware(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		if chat := c.Chat(); chat != nil {
			a.sessions.Track(chat.ID)
		}
		return next(c)
	}
}

// wizardRouter adapts the session registry to the text router.
type wizardRouter struct{ app *App }

func (w wizardRouter) InProgress(chatID int64) bool {
	return w.app.sessions.WizardInProgress(chatID)
}

func (w wizardRouter) Handle(c tele.Context) error {
	return w.app.handleWizardInput(c)
}

func chatIDOf(c tele.Context) int64 {
	if chat := c.Chat(); chat != nil {
		return chat.ID
	}
	return 0
}
