package gemini

import "fmt"

// Kind classifies the outcome of a review request.
type Kind int

const (
	KindSuccess Kind = iota
	KindNoSelection
	KindEmptyQuestion
	KindHTTPFailure
	KindTransportFailure
	KindMalformedResponse
	KindBusy
)

var kindNames = map[Kind]string{
	KindSuccess:           "success",
	KindNoSelection:       "no_selection",
	KindEmptyQuestion:     "empty_question",
	KindHTTPFailure:       "http_failure",
	KindTransportFailure:  "transport_failure",
	KindMalformedResponse: "malformed_response",
	KindBusy:              "busy",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Result is either the review text or a human-readable failure message.
type Result struct {
	Kind Kind
	Text string
	// StatusCode is set for KindHTTPFailure.
	StatusCode int
}

// OK reports whether Text holds a review.
func (r Result) OK() bool { return r.Kind == KindSuccess }

// Diagnostic messages produced while walking a response.
const (
	MsgNoCandidates    = "failed to retrieve AI review."
	MsgEmptyCandidates = "the 'candidates' field is empty or null."
	MsgNoContent       = "the candidate is null or missing a 'content' field."
	MsgNoParts         = "'content' is null or missing a 'parts' field."
	MsgEmptyParts      = "'parts' field is empty or null."
	MsgNoText          = "'part' is null or missing a 'text' field."
	MsgEmptyText       = "'text' field is empty or null."
)

func success(text string) Result { return Result{Kind: KindSuccess, Text: text} }

func malformed(msg string) Result { return Result{Kind: KindMalformedResponse, Text: msg} }

func httpFailure(code int) Result {
	return Result{Kind: KindHTTPFailure, Text: fmt.Sprintf("Request failed: %d", code), StatusCode: code}
}

func transportFailure(err error) Result {
	return Result{Kind: KindTransportFailure, Text: "Error during API call: " + err.Error()}
}
