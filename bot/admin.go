package bot

import (
	"errors"
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v4"

	"github.com/pawfund/charitybot/core/telegram/helpers"
	"github.com/pawfund/charitybot/donation/catalog"
	"github.com/pawfund/charitybot/donation/session"
)

// adminRejectText is sent to any sender outside the allow-list who invokes
// an admin command. Language-neutral since the sender may not have picked one.
const adminRejectText = "🚫 You are not authorized / Ви не авторизовані."

func handleAdminReject(c tele.Context) error {
	return helpers.SendText(c, adminRejectText)
}

func (a *App) handleAdmin(c tele.Context) error {
	var b strings.Builder
	b.WriteString("Admin commands:\n")
	b.WriteString("/add_project <key>\n")
	b.WriteString("/delete_project <key>\n")
	b.WriteString("/list_projects\n\n")
	fmt.Fprintf(&b, "Projects: %d\n", a.catalog.Len())
	fmt.Fprintf(&b, "Known chats: %d", a.sessions.KnownCount())
	return helpers.SendText(c, b.String())
}

func (a *App) handleAddProject(c tele.Context) error {
	key := commandArg(c)
	if key == "" {
		return helpers.SendText(c, "Usage: /add_project <key>")
	}
	if a.catalog.Has(key) {
		return helpers.SendText(c, fmt.Sprintf("Project %q already exists.", key))
	}
	a.sessions.StartWizard(chatIDOf(c), key)
	return helpers.SendText(c, stepPrompt(session.StepTitleEN))
}

// handleWizardInput feeds one message into the active authoring wizard. Each
// answer is stored verbatim; on the final step the assembled project is
// persisted and the wizard ends.
func (a *App) handleWizardInput(c tele.Context) error {
	res, ok := a.sessions.AdvanceWizard(chatIDOf(c), c.Text())
	if !ok {
		return nil
	}

	if res.Completed == nil {
		return helpers.SendText(c, stepPrompt(res.Next))
	}

	if err := a.catalog.Add(res.Key, *res.Completed); err != nil {
		if errors.Is(err, catalog.ErrDuplicateKey) {
			return helpers.SendText(c, fmt.Sprintf("Project %q already exists.", res.Key))
		}
		if sendErr := helpers.SendText(c, "Failed to save the project, please try again."); sendErr != nil {
			return sendErr
		}
		return err
	}
	return helpers.SendText(c, fmt.Sprintf("✅ Project %q added.", res.Key))
}

func (a *App) handleDeleteProject(c tele.Context) error {
	key := commandArg(c)
	if key == "" {
		keys := a.catalog.Keys()
		if len(keys) == 0 {
			return helpers.SendText(c, "No projects to delete.")
		}
		var b strings.Builder
		b.WriteString("Deletable projects:\n")
		for _, k := range keys {
			fmt.Fprintf(&b, "/delete_project %s\n", k)
		}
		return helpers.SendText(c, strings.TrimRight(b.String(), "\n"))
	}
	if err := a.catalog.Delete(key); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return helpers.SendText(c, fmt.Sprintf("Project %q not found.", key))
		}
		if sendErr := helpers.SendText(c, "Failed to delete the project, please try again."); sendErr != nil {
			return sendErr
		}
		return err
	}
	return helpers.SendText(c, fmt.Sprintf("🗑 Project %q deleted.", key))
}

func (a *App) handleListProjects(c tele.Context) error {
	keys := a.catalog.Keys()
	if len(keys) == 0 {
		return helpers.SendText(c, "No projects yet.")
	}
	var b strings.Builder
	b.WriteString("Projects:\n")
	for _, key := range keys {
		p, ok := a.catalog.Get(key)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "• %s\n  EN: %s\n  UA: %s\n", key, p.Title.EN, p.Title.UA)
	}
	return helpers.SendText(c, strings.TrimRight(b.String(), "\n"))
}

func stepPrompt(step session.Step) string {
	switch step {
	case session.StepTitleEN:
		return "Send the project title (EN):"
	case session.StepTitleUA:
		return "Send the project title (UA):"
	case session.StepDescEN:
		return "Send the description (EN):"
	case session.StepDescUA:
		return "Send the description (UA):"
	case session.StepRequisites:
		return "Send the payment requisites:"
	}
	return ""
}

func commandArg(c tele.Context) string {
	args := c.Args()
	if len(args) == 0 {
		return ""
	}
	return strings.TrimSpace(args[0])
}
