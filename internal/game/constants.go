package game

const (
	// DefaultMinPlayers is the minimum room size used when settings omit it
	DefaultMinPlayers = 3

	// DefaultMaxPlayers is the maximum room size used when settings omit it
	DefaultMaxPlayers = 10

	// DefaultImpostorCount is the requested impostor count used when settings omit it
	DefaultImpostorCount = 1

	// NicknameMinLen / NicknameMaxLen bound player nicknames
	NicknameMinLen = 2
	NicknameMaxLen = 15

	// CustomWordMinLen / CustomWordMaxLen bound host-added words
	CustomWordMinLen = 3
	CustomWordMaxLen = 20

	// SSEBufferSize is the buffer size for event channels handed to gateways
	SSEBufferSize = 10

	// RoomCodeLength is the length of generated room codes
	RoomCodeLength = 6

	// RoomCodeChars are the characters used for generating room codes (excluding ambiguous chars)
	RoomCodeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)
