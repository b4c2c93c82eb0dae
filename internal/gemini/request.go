package gemini

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEmptyCode is returned by BuildRequest when there is no code to review.
var ErrEmptyCode = errors.New("code text is empty")

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// PromptText joins the instruction, code and question into the single text
// part sent to the model.
func PromptText(instruction, code, question string) string {
	return instruction + code + question
}

// BuildRequest returns the generateContent body for one review. Length is not
// checked locally; an oversized payload is left for the API to reject.
func BuildRequest(instruction, code, question string) ([]byte, error) {
	if code == "" {
		return nil, ErrEmptyCode
	}
	body := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: PromptText(instruction, code, question)}}},
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}
	return payload, nil
}
