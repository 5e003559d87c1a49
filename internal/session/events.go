package session

// Command names accepted by a client
const (
	CmdCreateRoom  = "createRoom"
	CmdJoinRoom    = "joinRoom"
	CmdStartGame   = "startGame"
	CmdSubmitHint  = "submitHint"
	CmdRoundAction = "roundAction"
	CmdSubmitVote  = "submitVote"
	CmdNextRound   = "nextRound"
	CmdLeaveRoom   = "leaveRoom"
)

// Event names delivered to subscribers
const (
	EventRoomCreated     = "roomCreated"
	EventRoomJoined      = "roomJoined"
	EventJoinError       = "joinError"
	EventPlayersUpdate   = "playersUpdate"
	EventGameStateUpdate = "gameStateUpdate"
	EventRoomClosed      = "roomClosed"
	EventCommandError    = "commandError"
)
