// Package server is a small HTTP bridge so editors other than the terminal
// can request reviews. Each request carries its own selection and question
// and is answered with the text the presenter would have shown.
package server
