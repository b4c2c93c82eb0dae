package output

import (
	"encoding/json"
	"io"
)

type jsonResult struct {
	OK     bool   `json:"ok"`
	Review string `json:"review,omitempty"`
	Error  string `json:"error,omitempty"`
}

// JSON writes one JSON object per outcome, for editor integrations that
// shell out to glance.
type JSON struct {
	ew *errWriter
}

// NewJSON creates a JSON presenter.
func NewJSON(w io.Writer) *JSON {
	return &JSON{ew: &errWriter{w: w}}
}

func (j *JSON) DisplayText(text string) {
	j.emit(jsonResult{OK: true, Review: text})
}

func (j *JSON) DisplayError(text string) {
	j.emit(jsonResult{OK: false, Error: text})
}

func (j *JSON) Err() error { return j.ew.err }

func (j *JSON) emit(r jsonResult) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		j.ew.err = err
		return
	}
	j.ew.write(append(data, '\n'))
}
