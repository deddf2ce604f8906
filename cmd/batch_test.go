//go:build !integration

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/draft-cli/internal/engine"
	"github.com/sells-group/draft-cli/internal/schema"
)

func TestRenderOne(t *testing.T) {
	doc, err := schema.Parse([]byte(questionsSchemaYAML))
	require.NoError(t, err)
	eng, err := engine.New(doc)
	require.NoError(t, err)

	dir := t.TempDir()
	answersPath := filepath.Join(dir, "acme.yaml")
	require.NoError(t, os.WriteFile(answersPath, []byte("answers:\n  client: Acme Corp\n"), 0o644))

	prev := batchOutDir
	batchOutDir = t.TempDir()
	t.Cleanup(func() { batchOutDir = prev })

	require.NoError(t, renderOne(eng, answersPath))

	out, err := os.ReadFile(filepath.Join(batchOutDir, "acme.md"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "Client: Acme Corp")
	assert.Contains(t, string(out), "Basic engagement.")
}

func TestRenderOne_BadAnswersFile(t *testing.T) {
	doc, err := schema.Parse([]byte(questionsSchemaYAML))
	require.NoError(t, err)
	eng, err := engine.New(doc)
	require.NoError(t, err)

	dir := t.TempDir()
	answersPath := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(answersPath, []byte("answers: [not\n"), 0o644))

	assert.Error(t, renderOne(eng, answersPath))
}
