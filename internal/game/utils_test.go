package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzielinska/impostor-party/internal/models"
)

func TestGenerateRoomCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := GenerateRoomCode()
		assert.Len(t, code, RoomCodeLength)
		for _, ch := range code {
			assert.True(t, strings.ContainsRune(RoomCodeChars, ch), "unexpected char %q", ch)
		}
		seen[code] = true
	}
	// collisions over 100 draws from a 32^6 space would be a bug
	assert.Greater(t, len(seen), 95)
}

func TestValidNickname(t *testing.T) {
	assert.False(t, ValidNickname(""))
	assert.False(t, ValidNickname("x"))
	assert.True(t, ValidNickname("An"))
	assert.True(t, ValidNickname(strings.Repeat("a", 15)))
	assert.False(t, ValidNickname(strings.Repeat("a", 16)))
}

func TestValidNicknameCountsRunes(t *testing.T) {
	// 2-byte runes must be counted as single characters
	assert.True(t, ValidNickname("Łukasz"))
	assert.True(t, ValidNickname(strings.Repeat("ą", 8)))
	assert.True(t, ValidNickname(strings.Repeat("ą", 15)))
	assert.False(t, ValidNickname("ą"))
	assert.False(t, ValidNickname(strings.Repeat("ą", 16)))
}

func TestValidCustomWordCountsRunes(t *testing.T) {
	assert.True(t, ValidCustomWord("żółć"))
	assert.True(t, ValidCustomWord(strings.Repeat("ó", 20)))
	assert.False(t, ValidCustomWord("łą"))
	assert.False(t, ValidCustomWord(strings.Repeat("ó", 21)))
}

func TestNormalizeSettingsDefaults(t *testing.T) {
	s, err := NormalizeSettings(models.GameSettings{})
	require.NoError(t, err)
	assert.Equal(t, DefaultMinPlayers, s.MinPlayers)
	assert.Equal(t, DefaultMaxPlayers, s.MaxPlayers)
	assert.Equal(t, DefaultImpostorCount, s.ImpostorCount)
}

func TestNormalizeSettingsDedupesCustomWords(t *testing.T) {
	s, err := NormalizeSettings(models.GameSettings{
		CustomWords: []string{"pierogi", "zurek", "pierogi", "bigos"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"pierogi", "zurek", "bigos"}, s.CustomWords)
}

func TestNormalizeSettingsRejectsBadWordLength(t *testing.T) {
	_, err := NormalizeSettings(models.GameSettings{CustomWords: []string{"ab"}})
	assert.ErrorIs(t, err, ErrInvalidCustomWord)

	_, err = NormalizeSettings(models.GameSettings{CustomWords: []string{strings.Repeat("x", 21)}})
	assert.ErrorIs(t, err, ErrInvalidCustomWord)
}
