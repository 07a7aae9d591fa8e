package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryKeyResolvesInBothLocales(t *testing.T) {
	require.NotEmpty(t, Keys())
	for _, key := range Keys() {
		for _, lang := range []Language{EN, UA} {
			s := T(lang, key)
			assert.NotEmpty(t, s, "key %s has no %s translation", key, lang)
			assert.NotEqual(t, string(key), s, "key %s fell back to its own name in %s", key, lang)
		}
	}
}

func TestLocalesDiffer(t *testing.T) {
	for _, key := range Keys() {
		assert.NotEqual(t, T(EN, key), T(UA, key), "key %s has identical en/ua strings", key)
	}
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, T(EN, KeyHelpText), T(Language("de"), KeyHelpText))
	assert.Equal(t, T(EN, KeyProjects), T(None, KeyProjects))
}

func TestUnknownKeyReturnsKeyName(t *testing.T) {
	assert.Equal(t, "NoSuchKey", T(EN, Key("NoSuchKey")))
}

func TestValid(t *testing.T) {
	assert.True(t, EN.Valid())
	assert.True(t, UA.Valid())
	assert.False(t, None.Valid())
	assert.False(t, Language("fr").Valid())
}
