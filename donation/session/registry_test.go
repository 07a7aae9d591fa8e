package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawfund/charitybot/donation/i18n"
)

func TestLanguageLifecycle(t *testing.T) {
	reg := NewRegistry()
	const chat = int64(100)

	assert.Equal(t, i18n.None, reg.Language(chat))

	reg.SetLanguage(chat, i18n.UA)
	assert.Equal(t, i18n.UA, reg.Language(chat))

	reg.Reset(chat)
	assert.Equal(t, i18n.None, reg.Language(chat))
}

func TestTrackGrowsOnce(t *testing.T) {
	reg := NewRegistry()
	assert.True(t, reg.Track(1))
	assert.False(t, reg.Track(1))
	assert.True(t, reg.Track(2))
	assert.Equal(t, 2, reg.KnownCount())
	assert.ElementsMatch(t, []int64{1, 2}, reg.Known())
}

func TestResetKeepsKnownSet(t *testing.T) {
	reg := NewRegistry()
	reg.Track(7)
	reg.SetLanguage(7, i18n.EN)
	reg.Reset(7)
	assert.Equal(t, 1, reg.KnownCount())
}

func TestKnownIsASnapshot(t *testing.T) {
	reg := NewRegistry()
	reg.Track(1)
	snap := reg.Known()
	reg.Track(2)
	assert.Len(t, snap, 1)
	assert.Len(t, reg.Known(), 2)
}

func TestWizardStepSequence(t *testing.T) {
	reg := NewRegistry()
	const chat = int64(42)

	reg.StartWizard(chat, "vet")
	require.True(t, reg.WizardInProgress(chat))

	inputs := []struct {
		text     string
		wantNext Step
	}{
		{"Vet Care", StepTitleUA},
		{"Ветеринарна допомога", StepDescEN},
		{"Treatment costs", StepDescUA},
		{"Витрати на лікування", StepRequisites},
	}
	for _, in := range inputs {
		res, ok := reg.AdvanceWizard(chat, in.text)
		require.True(t, ok)
		assert.Nil(t, res.Completed)
		assert.Equal(t, in.wantNext, res.Next)
	}

	res, ok := reg.AdvanceWizard(chat, "IBAN: UA1")
	require.True(t, ok)
	require.NotNil(t, res.Completed)
	assert.Equal(t, "vet", res.Key)
	assert.Equal(t, "Vet Care", res.Completed.Title.EN)
	assert.Equal(t, "Ветеринарна допомога", res.Completed.Title.UA)
	assert.Equal(t, "Treatment costs", res.Completed.Description.EN)
	assert.Equal(t, "Витрати на лікування", res.Completed.Description.UA)
	assert.Equal(t, "IBAN: UA1", res.Completed.Requisites)

	assert.False(t, reg.WizardInProgress(chat))
}

func TestWizardInputsKeptVerbatim(t *testing.T) {
	reg := NewRegistry()
	const chat = int64(9)
	reg.StartWizard(chat, "food")

	raw := "  spaced \n multiline  "
	reg.AdvanceWizard(chat, raw)
	reg.AdvanceWizard(chat, "b")
	reg.AdvanceWizard(chat, "c")
	reg.AdvanceWizard(chat, "d")
	res, ok := reg.AdvanceWizard(chat, "e")
	require.True(t, ok)
	require.NotNil(t, res.Completed)
	assert.Equal(t, raw, res.Completed.Title.EN)
}

func TestAdvanceWithoutWizardIsNoOp(t *testing.T) {
	reg := NewRegistry()
	_, ok := reg.AdvanceWizard(5, "stray text")
	assert.False(t, ok)
}

func TestResetAbandonsWizard(t *testing.T) {
	reg := NewRegistry()
	const chat = int64(3)
	reg.StartWizard(chat, "vet")
	reg.AdvanceWizard(chat, "half done")
	reg.Reset(chat)
	assert.False(t, reg.WizardInProgress(chat))
	_, ok := reg.AdvanceWizard(chat, "more text")
	assert.False(t, ok)
}

func TestStartWizardReplacesPrevious(t *testing.T) {
	reg := NewRegistry()
	const chat = int64(4)
	reg.StartWizard(chat, "one")
	reg.AdvanceWizard(chat, "title")
	reg.StartWizard(chat, "two")

	res, ok := reg.AdvanceWizard(chat, "fresh title")
	require.True(t, ok)
	assert.Equal(t, "two", res.Key)
	assert.Equal(t, StepTitleUA, res.Next)
}
