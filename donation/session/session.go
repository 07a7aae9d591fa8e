// Package session tracks per-chat conversation state: the selected language
// and, for admins, the in-progress project-authoring wizard. State is
// process-lifetime only; nothing here survives a restart.
package session

import (
	"github.com/pawfund/charitybot/donation/catalog"
	"github.com/pawfund/charitybot/donation/i18n"
)

// Step is one stage of the authoring wizard. The sequence is fixed and there
// is no way to go back a step.
type Step string

const (
	// StepTitleEN collects the English project title.
	StepTitleEN Step = "title_en"
	// StepTitleUA collects the Ukrainian project title.
	StepTitleUA Step = "title_ua"
	// StepDescEN collects the English description.
	StepDescEN Step = "desc_en"
	// StepDescUA collects the Ukrainian description.
	StepDescUA Step = "desc_ua"
	// StepRequisites collects the payment instructions and completes the wizard.
	StepRequisites Step = "requisites"
)

// next returns the step that follows s, or false on the final step.
func (s Step) next() (Step, bool) {
	switch s {
	case StepTitleEN:
		return StepTitleUA, true
	case StepTitleUA:
		return StepDescEN, true
	case StepDescEN:
		return StepDescUA, true
	case StepDescUA:
		return StepRequisites, true
	}
	return "", false
}

// Wizard is the in-progress authoring dialogue of a single admin chat.
// Fields are written once per step and only become a catalog record when the
// final step is consumed.
type Wizard struct {
	Key  string
	Step Step

	titleEN string
	titleUA string
	descEN  string
	descUA  string
}

func newWizard(key string) *Wizard {
	return &Wizard{Key: key, Step: StepTitleEN}
}

// apply consumes one input verbatim for the current step. It returns the
// assembled record when the final step was consumed, otherwise done is false
// and the wizard has advanced to the next step.
func (w *Wizard) apply(input string) (rec catalog.Project, done bool) {
	switch w.Step {
	case StepTitleEN:
		w.titleEN = input
	case StepTitleUA:
		w.titleUA = input
	case StepDescEN:
		w.descEN = input
	case StepDescUA:
		w.descUA = input
	case StepRequisites:
		return catalog.Project{
			Title:       catalog.LocalizedText{EN: w.titleEN, UA: w.titleUA},
			Description: catalog.LocalizedText{EN: w.descEN, UA: w.descUA},
			Requisites:  input,
		}, true
	}
	w.Step, _ = w.Step.next()
	return catalog.Project{}, false
}

// Session is the conversation state of one chat.
type Session struct {
	Language i18n.Language
	Wizard   *Wizard
}
