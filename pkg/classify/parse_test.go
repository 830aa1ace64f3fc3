package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntries(t *testing.T) {
	t.Run("plain array", func(t *testing.T) {
		entries := ParseEntries(`[{"butler":"chef","prompt":"plan dinner","segment":{"rationale":"food"}}]`)
		require.Len(t, entries, 1)
		assert.Equal(t, "chef", entries[0].Butler)
		assert.Equal(t, "plan dinner", entries[0].Prompt)
		assert.Equal(t, "food", entries[0].Segment.Rationale)
	})

	t.Run("fenced with prose", func(t *testing.T) {
		output := "Here is the classification:\n```json\n" +
			`[{"butler":"gardener","prompt":"water the plants","segment":{"offsets":[[0,10]]}}]` +
			"\n```"
		entries := ParseEntries(output)
		require.Len(t, entries, 1)
		assert.Equal(t, "gardener", entries[0].Butler)
	})

	t.Run("unknown fields ignored", func(t *testing.T) {
		entries := ParseEntries(`[{"butler":"chef","prompt":"p","segment":{"rationale":"r"},"confidence":0.9}]`)
		require.Len(t, entries, 1)
	})

	t.Run("malformed element skipped, rest kept", func(t *testing.T) {
		entries := ParseEntries(`[
			{"butler":"chef","prompt":"p","segment":{"rationale":"r"}},
			{"butler":42},
			{"butler":"gardener","prompt":"q","segment":{"rationale":"s"}}
		]`)
		require.Len(t, entries, 2)
		assert.Equal(t, "chef", entries[0].Butler)
		assert.Equal(t, "gardener", entries[1].Butler)
	})

	t.Run("entry without segment detail dropped", func(t *testing.T) {
		entries := ParseEntries(`[{"butler":"chef","prompt":"p","segment":{}}]`)
		assert.Nil(t, entries)
	})

	t.Run("not an array", func(t *testing.T) {
		assert.Nil(t, ParseEntries(`{"butler":"chef"}`))
		assert.Nil(t, ParseEntries("I could not classify this message."))
		assert.Nil(t, ParseEntries(""))
	})
}
