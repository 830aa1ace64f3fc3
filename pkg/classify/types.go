package classify

import "context"

// Segment locates the portion of the original message an entry covers.
// At least one of the fields is present on a valid entry.
type Segment struct {
	SentenceSpans [][2]int `json:"sentence_spans,omitempty"`
	Offsets       [][2]int `json:"offsets,omitempty"`
	Rationale     string   `json:"rationale,omitempty"`
}

// Entry is one classification result: a target butler and the
// self-contained prompt to dispatch to it.
type Entry struct {
	Butler  string  `json:"butler"`
	Prompt  string  `json:"prompt"`
	Segment Segment `json:"segment"`
}

// valid reports whether the entry carries the required fields.
func (e Entry) valid() bool {
	if e.Butler == "" || e.Prompt == "" {
		return false
	}
	return len(e.Segment.SentenceSpans) > 0 ||
		len(e.Segment.Offsets) > 0 ||
		e.Segment.Rationale != ""
}

// ButlerInfo is the classifier's view of one eligible butler.
type ButlerInfo struct {
	Name        string
	Description string
}

// EligibleLister supplies the current set of routable butlers.
// Quarantined and stale butlers are already filtered out.
type EligibleLister interface {
	EligibleButlers(ctx context.Context) ([]ButlerInfo, error)
}

// Invoker runs one LLM turn on the Switchboard butler and returns the
// raw output text. The spawner provides the implementation.
type Invoker interface {
	Invoke(ctx context.Context, prompt string) (string, error)
}
