// Glance asks Gemini to review a piece of code.
//
// The code comes from a file, a line range of a file, or stdin, together with
// an optional question. The review is shown in the terminal, in a side by
// side panel, or returned to an editor through a small HTTP bridge.
//
// Usage:
//
//	glance review main.go                 # review a whole file
//	glance review main.go:10-40 -q "why?" # review a line range with a question
//	cat query.sql | glance review         # review code from stdin
//	glance panel main.go:10-40            # code and answers side by side
//	glance serve                          # editor bridge on 127.0.0.1:7419
//	glance prompts                        # list prompt presets
package main
