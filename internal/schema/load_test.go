package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSchema = `
title: Consulting Agreement
introduction: Answer the questions to draft the agreement.
intro_text: "This agreement is made on [DATE]."
outro_text: "Signed, [client]."
groups:
  - group_name: Basics
    questions:
      - id: client
        type: text
        question: Client name?
        text_block: "Client: [USER_INPUT]"
        placeholder: the Client
      - id: tier
        type: multiple_choice
        question: Which tier?
        options:
          - id: basic
            label: Basic
            text_block: Basic support applies.
            default: true
          - id: pro
            label: Pro
            text_block: Priority support applies.
  - group_name: Extras
    show_group_name: false
    questions:
      - id: features
        type: checkbox
        question: Which features?
        conditions:
          - id: tier
            value: pro
        options:
          - id: sla
            label: SLA
            text_block: An SLA is included.
    groups:
      - group_name: Nested
        questions:
          - id: notes
            type: text
            question: Notes?
            multiline: true
            default_from: client
`

func writeSchema(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions.yaml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	doc, err := Load(writeSchema(t, sampleSchema))
	require.NoError(t, err)

	assert.Equal(t, "Consulting Agreement", doc.Title)
	assert.Equal(t, "This agreement is made on [DATE].", doc.IntroText)
	assert.Equal(t, "Signed, [client].", doc.OutroText)
	require.Len(t, doc.Groups, 2)

	basics := doc.Groups[0]
	assert.Equal(t, "Basics", basics.Name)
	assert.True(t, basics.ShowHeading())
	require.Len(t, basics.Questions, 2)
	assert.Equal(t, Text, basics.Questions[0].Type)
	assert.Equal(t, "the Client", basics.Questions[0].Placeholder)

	extras := doc.Groups[1]
	assert.False(t, extras.ShowHeading())
	require.Len(t, extras.Groups, 1)
	assert.Equal(t, "client", extras.Groups[0].Questions[0].DefaultFrom)
	assert.True(t, extras.Groups[0].Questions[0].Multiline)
}

func TestLoadLegacyTypeNames(t *testing.T) {
	t.Parallel()

	doc, err := Load(writeSchema(t, sampleSchema))
	require.NoError(t, err)

	// multiple_choice and checkbox are the original dialect's names.
	assert.Equal(t, SingleChoice, doc.Groups[0].Questions[1].Type)
	assert.Equal(t, MultiChoice, doc.Groups[1].Questions[0].Type)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema: read")
}

func TestParseInvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("groups: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema: parse")
}

func TestIndex(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(sampleSchema))
	require.NoError(t, err)

	ix := NewIndex(doc)
	assert.Equal(t, 4, ix.Len())

	q, ok := ix.Question("features")
	require.True(t, ok)
	assert.Equal(t, MultiChoice, q.Type)

	_, ok = ix.Question("absent")
	assert.False(t, ok)

	ids := make([]string, 0, ix.Len())
	for _, q := range ix.Questions() {
		ids = append(ids, q.ID)
	}
	assert.Equal(t, []string{"client", "tier", "features", "notes"}, ids)

	assert.Equal(t, "Basics", ix.GroupPath("tier"))
	assert.Equal(t, "Extras / Nested", ix.GroupPath("notes"))
}

func TestIndexDuplicateIDKeepsFirst(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(`
groups:
  - group_name: A
    questions:
      - id: dup
        type: text
        placeholder: first
  - group_name: B
    questions:
      - id: dup
        type: text
        placeholder: second
`))
	require.NoError(t, err)

	ix := NewIndex(doc)
	assert.Equal(t, 1, ix.Len())
	q, ok := ix.Question("dup")
	require.True(t, ok)
	assert.Equal(t, "first", q.Placeholder)
}
