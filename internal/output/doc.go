// Package output presents review outcomes to the user.
//
// Three formats are supported:
//   - text: review rendered as terminal markdown (glamour), errors in red on stderr
//   - raw: review text exactly as returned by the model
//   - json: {"ok":..., "review"|"error": ...} for editor integrations
//
// Use [GetPresenter] to obtain a [Presenter] for a given format string.
package output
