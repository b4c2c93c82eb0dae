// Package panel is the terminal dialog for inline reviews: the selected code
// on the left, the answer on the right and a question box underneath.
//
// The review call itself is the blocking [review.Interaction.Run]; the panel
// only moves it off the UI goroutine and shows a spinner while it is in
// flight.
package panel
