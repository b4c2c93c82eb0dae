package gemini

import (
	"errors"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned by Parse when the body is not JSON at all.
var ErrInvalidJSON = errors.New("response is not valid JSON")

// Parse extracts candidates[0].content.parts[0].text from a generateContent
// response. Each missing or mistyped field yields a KindMalformedResponse
// result naming that field. The error is non-nil only for invalid JSON.
func Parse(raw []byte) (Result, error) {
	if !gjson.ValidBytes(raw) {
		return Result{}, ErrInvalidJSON
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return malformed(MsgNoCandidates), nil
	}

	candidates := root.Get("candidates")
	if !candidates.Exists() {
		return malformed(MsgNoCandidates), nil
	}
	if !candidates.IsArray() || len(candidates.Array()) == 0 {
		return malformed(MsgEmptyCandidates), nil
	}

	candidate := candidates.Array()[0]
	if !candidate.IsObject() || !candidate.Get("content").Exists() {
		return malformed(MsgNoContent), nil
	}

	body := candidate.Get("content")
	if !body.IsObject() || !body.Get("parts").Exists() {
		return malformed(MsgNoParts), nil
	}

	parts := body.Get("parts")
	if !parts.IsArray() || len(parts.Array()) == 0 {
		return malformed(MsgEmptyParts), nil
	}

	first := parts.Array()[0]
	if !first.IsObject() || !first.Get("text").Exists() {
		return malformed(MsgNoText), nil
	}

	text := first.Get("text")
	if text.Type != gjson.String || text.Str == "" {
		return malformed(MsgEmptyText), nil
	}
	return success(text.Str), nil
}
