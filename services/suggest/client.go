// Package suggest is the stateless gateway to the text-generation
// provider. It turns the current video metadata into a bounded prompt and
// parses the free-text completion into a short candidate list.
package suggest

import "context"

// TitleSuggester defines the standard interface for any suggestion backend.
type TitleSuggester interface {
	// GenerateTitles returns up to three alternative titles for a video
	// with the given current title and description. Entries are opaque
	// text: no numbering or formatting stripping is guaranteed beyond
	// line splitting.
	GenerateTitles(ctx context.Context, title, description string) ([]string, error)
}
