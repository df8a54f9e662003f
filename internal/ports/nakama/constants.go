package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create an
	// open Hearts table.
	RpcQuickMatch = "quick_match"

	// RpcRejoinToken is the Nakama RPC id a connected player calls to obtain
	// a grant for reclaiming their seat after a disconnect.
	RpcRejoinToken = "rejoin_token"

	// MatchNameHearts is the authoritative match handler name registered with Nakama.
	MatchNameHearts = "hearts_match"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartGame     int64 = 1
	OpExchangeCards int64 = 2
	OpPlayCard      int64 = 3

	// Server -> Client events
	OpMatchSnapshot   int64 = 100
	OpPlayerJoined    int64 = 101
	OpPlayerLeft      int64 = 102
	OpHandStarted     int64 = 103
	OpHandDealt       int64 = 104 // sent privately, one hand per owner
	OpExchangeStarted int64 = 105
	OpPlayingStarted  int64 = 106
	OpCardPlayed      int64 = 107
	OpTrickCompleted  int64 = 108
	OpHandCompleted   int64 = 109
	OpGameCompleted   int64 = 110
	OpGameError       int64 = 111
)
