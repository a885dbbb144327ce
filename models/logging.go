package models

import "time"

// SessionKeyLength is the exact length of a logging session key issued by
// the master. A key of any other length means the server declined to start
// a session.
const SessionKeyLength = 32

// LoggingSession describes one server-side recording period started by this
// client. The session outlives the client process; the key is what ties
// later data retrieval to the recording.
type LoggingSession struct {
	Key       string    `json:"key"`
	Device    string    `json:"device"`
	PeriodMS  int64     `json:"period_ms"`
	CreatedAt time.Time `json:"created_at"`
}

// LoggingAck is the master's response to a logging-enable call.
type LoggingAck struct {
	SessionKey string `json:"session_key"`
}

// LoggingSessionInfo is one entry of the master's logging-session listing.
type LoggingSessionInfo struct {
	Key       string `json:"key"`
	Device    string `json:"device"`
	CreatedAt string `json:"created_at"`
	Samples   int64  `json:"samples"`
}
