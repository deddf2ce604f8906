//go:build !integration

package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/draft-cli/internal/answers"
	"github.com/sells-group/draft-cli/internal/engine"
	"github.com/sells-group/draft-cli/internal/schema"
	"github.com/sells-group/draft-cli/internal/store"
)

const questionsSchemaYAML = `
title: Engagement Letter
groups:
  - group_name: Parties
    questions:
      - id: client
        type: text
        text_block: "Client: [USER_INPUT]"
      - id: tier
        type: single_choice
        options:
          - id: basic
            text_block: Basic engagement.
            default: true
          - id: premium
            text_block: Premium engagement.
      - id: premium_scope
        type: text
        text_block: "Scope: [USER_INPUT]"
        conditions:
          - id: tier
            value: premium
`

func TestFormatQuestions(t *testing.T) {
	doc, err := schema.Parse([]byte(questionsSchemaYAML))
	require.NoError(t, err)
	eng, err := engine.New(doc)
	require.NoError(t, err)

	ans := answers.Seed(doc)
	ans.SetText("client", "Acme Corp")

	var buf bytes.Buffer
	formatQuestions(&buf, eng, ans)

	output := buf.String()
	assert.Contains(t, output, "ID")
	assert.Contains(t, output, "TYPE")
	assert.Contains(t, output, "GROUP")
	assert.Contains(t, output, "client")
	assert.Contains(t, output, "text")
	assert.Contains(t, output, "Parties")
	assert.Contains(t, output, "Acme Corp")
	assert.Contains(t, output, "Basic engagement.")
	// premium_scope is listed but hidden under the default tier.
	assert.Contains(t, output, "premium_scope")
	assert.Contains(t, output, "false")
}

func TestFormatQuestions_TruncatesLongValues(t *testing.T) {
	doc, err := schema.Parse([]byte(questionsSchemaYAML))
	require.NoError(t, err)
	eng, err := engine.New(doc)
	require.NoError(t, err)

	long := "This value keeps going well past the forty character column budget."
	ans := answers.Seed(doc)
	ans.SetText("client", long)

	var buf bytes.Buffer
	formatQuestions(&buf, eng, ans)

	assert.NotContains(t, buf.String(), long)
	assert.Contains(t, buf.String(), long[:37]+"...")
}

func TestFormatRendersList(t *testing.T) {
	now := time.Date(2026, 4, 2, 9, 15, 0, 0, time.UTC)
	renders := []store.Render{
		{
			ID:        "abc12345-6789-0000-0000-000000000000",
			Title:     "Engagement Letter",
			Answered:  7,
			Visible:   9,
			CreatedAt: now,
		},
		{
			ID:        "def12345-6789-0000-0000-000000000000",
			Title:     "Consulting Agreement",
			Answered:  3,
			Visible:   5,
			CreatedAt: now.Add(-time.Hour),
		},
	}

	var buf bytes.Buffer
	formatRendersList(&buf, renders)

	output := buf.String()
	assert.Contains(t, output, "ID")
	assert.Contains(t, output, "TITLE")
	assert.Contains(t, output, "ANSWERED")
	assert.Contains(t, output, "Engagement Letter")
	assert.Contains(t, output, "Consulting Agreement")
	assert.Contains(t, output, "abc12345")
	assert.Contains(t, output, "2026-04-02T09:15:00Z")
}
