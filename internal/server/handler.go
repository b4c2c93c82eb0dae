package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dshills/glance/internal/gemini"
	"github.com/dshills/glance/internal/review"
	"github.com/dshills/glance/internal/selection"
)

// maxBodyBytes caps the size of a review request.
const maxBodyBytes = 1 << 20

// reviewRequest is the body of POST /api/v1/review.
type reviewRequest struct {
	Code     string `json:"code"`
	Question string `json:"question"`
	Mode     string `json:"mode"`
	File     string `json:"file,omitempty"`
}

type reviewResponse struct {
	Review string `json:"review,omitempty"`
	Error  string `json:"error,omitempty"`
	Kind   string `json:"kind,omitempty"`
}

// ReviewHandler runs one Interaction per request against a shared sender.
type ReviewHandler struct {
	sender review.Sender
	opts   review.Options
	logger *slog.Logger
}

// NewReviewHandler creates a review handler. opts.Mode is the default for
// requests that do not name one.
func NewReviewHandler(sender review.Sender, opts review.Options, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ReviewHandler{sender: sender, opts: opts, logger: logger}
}

// Handle processes a review request.
func (h *ReviewHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		h.logger.Debug("invalid review request", "error", err)
		writeJSON(w, http.StatusBadRequest, reviewResponse{Error: "invalid request body", Kind: "bad_request"})
		return
	}

	opts := h.opts
	if req.Mode != "" {
		mode, err := review.ParseMode(req.Mode)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, reviewResponse{Error: err.Error(), Kind: "bad_request"})
			return
		}
		opts.Mode = mode
	}
	opts.Logger = h.logger

	sel := selection.Selection{Text: req.Code, File: req.File}
	out := &capture{}
	res := review.NewInteraction(h.sender, sel, out, opts).Run(r.Context(), req.Question)

	if res.OK() {
		writeJSON(w, http.StatusOK, reviewResponse{Review: out.text})
		return
	}
	writeJSON(w, statusFor(res), reviewResponse{Error: out.text, Kind: res.Kind.String()})
}

func statusFor(res gemini.Result) int {
	switch res.Kind {
	case gemini.KindNoSelection, gemini.KindEmptyQuestion:
		return http.StatusBadRequest
	case gemini.KindBusy:
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}

// capture is the presenter for a single HTTP exchange.
type capture struct {
	text    string
	isError bool
}

func (c *capture) DisplayText(text string)  { c.text, c.isError = text, false }
func (c *capture) DisplayError(text string) { c.text, c.isError = text, true }

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
