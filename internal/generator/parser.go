package generator

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrUnparseable indicates no parse strategy could extract a tweet array
// from the model's response text.
var ErrUnparseable = errors.New("unparseable generation response")

// GeneratedTweet is one entry extracted from the model response. Missing
// fields default to empty strings; extra keys in the response are dropped.
type GeneratedTweet struct {
	Category string `json:"category"`
	Content  string `json:"content"`
}

// ParseStrategy extracts tweets from raw model output. Strategies return
// (nil, false) when the text does not match their shape.
type ParseStrategy interface {
	Name() string
	Parse(raw string) ([]GeneratedTweet, bool)
}

// defaultStrategies are tried in order; the first success wins.
var defaultStrategies = []ParseStrategy{
	strictJSONStrategy{},
	bracketedArrayStrategy{},
}

// ParseResponse runs the raw model text through the parse strategies and
// returns the extracted tweets, or ErrUnparseable when none apply.
func ParseResponse(raw string) ([]GeneratedTweet, error) {
	for _, strategy := range defaultStrategies {
		if tweets, ok := strategy.Parse(raw); ok {
			return tweets, nil
		}
	}
	return nil, ErrUnparseable
}

// strictJSONStrategy parses the entire response as a JSON array. This is
// the happy path when the model follows the prompt exactly.
type strictJSONStrategy struct{}

func (strictJSONStrategy) Name() string { return "strict_json" }

func (strictJSONStrategy) Parse(raw string) ([]GeneratedTweet, bool) {
	var tweets []GeneratedTweet
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &tweets); err != nil {
		return nil, false
	}
	return tweets, true
}

// bracketedArrayStrategy recovers a JSON array embedded in surrounding
// prose. The span is anchored on brackets that actually delimit a
// list of objects: the first '[' followed by '{' and the last ']'
// preceded by '}'. Prose brackets like citation markers fall outside
// those anchors.
type bracketedArrayStrategy struct{}

func (bracketedArrayStrategy) Name() string { return "bracketed_array" }

func (bracketedArrayStrategy) Parse(raw string) ([]GeneratedTweet, bool) {
	start := arrayOpen(raw)
	if start == -1 {
		return nil, false
	}
	end := arrayClose(raw, start)
	if end == -1 {
		return nil, false
	}

	var tweets []GeneratedTweet
	if err := json.Unmarshal([]byte(raw[start:end+1]), &tweets); err != nil {
		return nil, false
	}
	return tweets, true
}

// arrayOpen returns the index of the first '[' whose next non-whitespace
// character is '{'.
func arrayOpen(raw string) int {
	for i := 0; i < len(raw); i++ {
		if raw[i] != '[' {
			continue
		}
		rest := strings.TrimLeft(raw[i+1:], " \t\r\n")
		if strings.HasPrefix(rest, "{") {
			return i
		}
	}
	return -1
}

// arrayClose returns the index of the last ']' after start whose
// preceding non-whitespace character is '}'.
func arrayClose(raw string, start int) int {
	for i := len(raw) - 1; i > start; i-- {
		if raw[i] != ']' {
			continue
		}
		inner := strings.TrimRight(raw[start+1:i], " \t\r\n")
		if strings.HasSuffix(inner, "}") {
			return i
		}
	}
	return -1
}
