package provider

import (
	"encoding/json"
	"fmt"
	"strings"
)

// statusHints maps backend HTTP statuses to messages a student can act on.
// 529 is Anthropic's overloaded_error status.
var statusHints = map[int]string{
	400: "the request was rejected as malformed",
	401: "authentication failed (check the API key)",
	403: "this API key is not allowed to use that model",
	404: "unknown model or endpoint",
	429: "rate limited, wait a moment before retrying",
	500: "the backend hit an internal error",
	502: "bad gateway in front of the backend",
	503: "the backend is temporarily unavailable",
	529: "the backend is overloaded, try again shortly",
}

// apiError prefers the structured message carried in the error body, then a
// status hint, then a truncated body dump.
func apiError(statusCode int, body []byte) string {
	var errResp struct {
		Error struct {
			Message string `json:"message"`
			Type    string `json:"type"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &errResp) == nil {
		if msg := errResp.Error.Message; msg != "" {
			return msg
		}
		if errResp.Message != "" {
			return errResp.Message
		}
	}

	if hint, ok := statusHints[statusCode]; ok {
		return hint
	}

	s := string(body)
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return fmt.Sprintf("HTTP %d: %s", statusCode, s)
}

var transportHints = []struct{ needle, hint string }{
	{"connection refused", "connection refused (backend not running?)"},
	{"no such host", "unknown host (check base_url)"},
	{"deadline exceeded", "timed out waiting for the backend"},
	{"timeout", "timed out waiting for the backend"},
	{"reset by peer", "the connection was reset by the backend"},
	{"EOF", "the connection closed mid-response"},
}

// transportError folds the network failures students actually hit into
// short actionable messages.
func transportError(err error) string {
	msg := err.Error()
	for _, h := range transportHints {
		if strings.Contains(msg, h.needle) {
			return h.hint
		}
	}
	return msg
}
