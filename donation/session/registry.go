package session

import (
	"sync"

	"log/slog"

	"github.com/pawfund/charitybot/core/logger"
	"github.com/pawfund/charitybot/donation/catalog"
	"github.com/pawfund/charitybot/donation/i18n"
)

// Registry owns all chat sessions and the known-chat set. Sessions come and
// go with resets; the known-chat set only ever grows.
type Registry struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
	known    map[int64]struct{}
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[int64]*Session),
		known:    make(map[int64]struct{}),
	}
}

// Track records the chat as known. It reports whether the chat was new.
func (r *Registry) Track(chatID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, seen := r.known[chatID]; seen {
		return false
	}
	r.known[chatID] = struct{}{}
	logger.Session.Debug("chat tracked",
		slog.String("event", "session.track"),
		slog.Int64("chat_id", chatID),
		slog.Int("count", len(r.known)),
	)
	return true
}

// Known returns a snapshot of all known chat identities. The broadcast
// scheduler iterates the snapshot, so growth mid-cycle never affects an
// in-flight pass.
func (r *Registry) Known() []int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]int64, 0, len(r.known))
	for id := range r.known {
		out = append(out, id)
	}
	return out
}

// KnownCount returns the number of known chats.
func (r *Registry) KnownCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.known)
}

// Language returns the selected language of the chat, or i18n.None.
func (r *Registry) Language(chatID int64) i18n.Language {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.sessions[chatID]; ok {
		return s.Language
	}
	return i18n.None
}

// SetLanguage stores the language selection for the chat.
func (r *Registry) SetLanguage(chatID int64, lang i18n.Language) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[chatID]
	if !ok {
		s = &Session{}
		r.sessions[chatID] = s
	}
	s.Language = lang
}

// Reset discards the whole session, including any in-progress wizard. The
// chat stays in the known set.
func (r *Registry) Reset(chatID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, chatID)
}

// StartWizard opens a fresh authoring wizard for the chat under key. Any
// previous wizard of that chat is discarded.
func (r *Registry) StartWizard(chatID int64, key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[chatID]
	if !ok {
		s = &Session{}
		r.sessions[chatID] = s
	}
	s.Wizard = newWizard(key)
}

// WizardInProgress reports whether the chat has an active authoring wizard.
func (r *Registry) WizardInProgress(chatID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[chatID]
	return ok && s.Wizard != nil
}

// WizardResult is the outcome of feeding one input to a wizard. Either Next
// names the step to prompt for, or Completed carries the assembled record and
// the wizard has been discarded.
type WizardResult struct {
	Key       string
	Next      Step
	Completed *catalog.Project
}

// AdvanceWizard feeds one plain-text input to the chat's wizard. It reports
// false when no wizard is active.
func (r *Registry) AdvanceWizard(chatID int64, input string) (WizardResult, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[chatID]
	if !ok || s.Wizard == nil {
		return WizardResult{}, false
	}

	res := WizardResult{Key: s.Wizard.Key}
	rec, done := s.Wizard.apply(input)
	if done {
		res.Completed = &rec
		s.Wizard = nil
	} else {
		res.Next = s.Wizard.Step
	}
	return res, true
}
