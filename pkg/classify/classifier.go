package classify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/homekeep/butlerd/pkg/config"
)

// FallbackButler receives messages the classifier could not place.
const FallbackButler = config.ButlerGeneral

// Classifier turns raw message text into classification entries by
// invoking the Switchboard's runtime adapter with a structured prompt.
// Stateless — all state comes from parameters. Thread-safe.
type Classifier struct {
	invoker Invoker
	lister  EligibleLister
}

// NewClassifier creates a classifier.
// Panics if either collaborator is nil — callers must wire both.
func NewClassifier(invoker Invoker, lister EligibleLister) *Classifier {
	if invoker == nil {
		panic("classify.NewClassifier: invoker must not be nil")
	}
	if lister == nil {
		panic("classify.NewClassifier: lister must not be nil")
	}
	return &Classifier{invoker: invoker, lister: lister}
}

// Classify produces at least one entry for the message. Parse failures
// and empty results degrade to a single fallback entry targeting the
// general butler, never an error the pipeline has to handle.
func (c *Classifier) Classify(ctx context.Context, text string) ([]Entry, error) {
	eligible, err := c.lister.EligibleButlers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list eligible butlers: %w", err)
	}

	prompt := c.buildPrompt(text, eligible)

	output, err := c.invoker.Invoke(ctx, prompt)
	if err != nil {
		slog.Warn("Classifier invocation failed, using fallback entry", "error", err)
		return []Entry{fallbackEntry(text)}, nil
	}

	entries := ParseEntries(output)

	// Drop entries targeting butlers outside the eligible set.
	names := make(map[string]bool, len(eligible))
	for _, b := range eligible {
		names[b.Name] = true
	}
	kept := entries[:0]
	for _, e := range entries {
		if !names[e.Butler] {
			slog.Warn("Dropping classification entry for ineligible butler",
				"butler", e.Butler)
			continue
		}
		kept = append(kept, e)
	}

	if len(kept) == 0 {
		slog.Info("Classifier produced no usable entries, using fallback")
		return []Entry{fallbackEntry(text)}, nil
	}
	return kept, nil
}

func fallbackEntry(text string) Entry {
	return Entry{
		Butler:  FallbackButler,
		Prompt:  text,
		Segment: Segment{Rationale: "fallback"},
	}
}

const classifierInstructions = `You are the message classifier for a household of specialist butlers.
Split the message into segments and assign each segment to the single best butler.
A message about one topic produces one entry; a message spanning topics produces one entry per topic.
Each entry's prompt must be self-contained: a reader with no access to the original message must be able to act on it.

Respond with ONLY a JSON array. Each element:
  {"butler": "<name>", "prompt": "<self-contained instruction>", "segment": {"rationale": "<why this butler>"}}

Do not wrap the array in markdown fences or add commentary.`

// buildPrompt composes the classifier prompt: instructions, the eligible
// roster with descriptions, then the message itself.
func (c *Classifier) buildPrompt(text string, eligible []ButlerInfo) string {
	var sb strings.Builder
	sb.WriteString(classifierInstructions)
	sb.WriteString("\n\nAvailable butlers:\n")
	for _, b := range eligible {
		desc := b.Description
		if desc == "" {
			desc = "(no description)"
		}
		fmt.Fprintf(&sb, "- %s: %s\n", b.Name, desc)
	}
	sb.WriteString("\nMessage:\n")
	sb.WriteString(text)
	return sb.String()
}
