// Package gemini talks to Google's Gemini generateContent endpoint on behalf
// of a single review.
//
// [BuildRequest] assembles the request body, [Client.Send] performs one POST
// with no retry, and [Parse] walks the response field by field so that every
// structural surprise maps to its own diagnostic string.
//
// Outcomes are [Result] values rather than Go errors: the only consumer is a
// UI that shows one line of text, so HTTP failures, transport faults and
// malformed responses are all collapsed into readable messages here.
package gemini
