/*
Package server implements msgpack IPC for spell checking.

The server reads a stream of msgpack encoded requests from its input and
writes one msgpack encoded response per request to its output. Messages are
processed synchronously, in order, with timing info included in responses.

# IPC

Each request carries an ID, an action and a word:

	{"id": "req_001", "a": "suggest", "w": "teh"}

An empty action is treated as "suggest". The server answers with the
membership flag and the ordered suggestion list, always ending in the
"Manual Entry" and "Ignore" sentinels:

	{"id": "req_001", "w": "teh", "k": false, "s": ["the", "tea", "Manual Entry", "Ignore"], "c": 4, "t": 812}

"check" answers only the membership flag, "add" inserts a word and reports
whether it was new, "stats" returns the checker counters:

	{"id": "req_002", "a": "check", "w": "the"}
	{"id": "req_003", "a": "add", "w": "wordcheck"}
	{"id": "req_004", "a": "stats"}

Failures are answered with an error message and a status code:

	{"id": "req_005", "e": "unknown action: fix", "c": 400}

# Message Types

Request is the only inbound message. WordResponse answers check and suggest,
AddResponse answers add, StatsResponse answers stats and ErrorResponse is
sent whenever a request cannot be served.
*/
package server

const (
	ActionSuggest = "suggest"
	ActionCheck   = "check"
	ActionAdd     = "add"
	ActionStats   = "stats"
)

const (
	CodeBadRequest      = 400
	CodeTooLong         = 413
	CodeInternalFailure = 500
)

// Request - inbound message
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"a,omitempty"`
	Word   string `msgpack:"w,omitempty"`
}

// WordResponse - check and suggest response
type WordResponse struct {
	ID          string   `msgpack:"id"`
	Word        string   `msgpack:"w"`
	Known       bool     `msgpack:"k"`
	Suggestions []string `msgpack:"s,omitempty"`
	Count       int      `msgpack:"c"`
	TimeTaken   int64    `msgpack:"t"`
}

// AddResponse - add response
type AddResponse struct {
	ID    string `msgpack:"id"`
	Word  string `msgpack:"w"`
	Added bool   `msgpack:"a"`
	Words int    `msgpack:"n"`
}

// StatsResponse - counters of the running checker
type StatsResponse struct {
	ID    string         `msgpack:"id"`
	Stats map[string]int `msgpack:"st"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
