package game

import (
	crand "crypto/rand"
	"math/big"
	"math/rand"
	"unicode/utf8"

	"github.com/mzielinska/impostor-party/internal/models"
)

// GenerateRoomCode creates a random room code
func GenerateRoomCode() string {
	code := make([]byte, RoomCodeLength)
	for i := 0; i < RoomCodeLength; i++ {
		n, err := crand.Int(crand.Reader, big.NewInt(int64(len(RoomCodeChars))))
		if err != nil {
			// fallback to math/rand if crypto fails
			code[i] = RoomCodeChars[rand.Intn(len(RoomCodeChars))]
			continue
		}
		code[i] = RoomCodeChars[n.Int64()]
	}
	return string(code)
}

// ValidNickname reports whether the nickname length is within bounds.
// Lengths count runes, not bytes, so accented nicknames measure correctly.
func ValidNickname(nickname string) bool {
	n := utf8.RuneCountInString(nickname)
	return n >= NicknameMinLen && n <= NicknameMaxLen
}

// ValidCustomWord reports whether a custom word length is within bounds
func ValidCustomWord(word string) bool {
	n := utf8.RuneCountInString(word)
	return n >= CustomWordMinLen && n <= CustomWordMaxLen
}

// NormalizeSettings fills in defaults for zero-valued fields, validates the
// custom words and deduplicates them preserving order.
func NormalizeSettings(s models.GameSettings) (models.GameSettings, error) {
	if s.MinPlayers == 0 {
		s.MinPlayers = DefaultMinPlayers
	}
	if s.MaxPlayers == 0 {
		s.MaxPlayers = DefaultMaxPlayers
	}
	if s.ImpostorCount == 0 {
		s.ImpostorCount = DefaultImpostorCount
	}

	seen := make(map[string]bool, len(s.CustomWords))
	deduped := make([]string, 0, len(s.CustomWords))
	for _, w := range s.CustomWords {
		if !ValidCustomWord(w) {
			return s, ErrInvalidCustomWord
		}
		if seen[w] {
			continue
		}
		seen[w] = true
		deduped = append(deduped, w)
	}
	s.CustomWords = deduped

	return s, nil
}
