package schema

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// legacyTypes maps question type names from the original questionnaire
// dialect to their current names.
var legacyTypes = map[QuestionType]QuestionType{
	"multiple_choice": SingleChoice,
	"checkbox":        MultiChoice,
}

// Load reads a questionnaire definition from a YAML file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "schema: read %s", path)
	}
	return Parse(data)
}

// Parse decodes a questionnaire definition from YAML bytes and normalizes
// legacy question type names.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, eris.Wrap(err, "schema: parse document")
	}
	normalizeGroups(doc.Groups)
	return &doc, nil
}

func normalizeGroups(groups []Group) {
	for i := range groups {
		g := &groups[i]
		for j := range g.Questions {
			q := &g.Questions[j]
			if mapped, ok := legacyTypes[q.Type]; ok {
				q.Type = mapped
			}
		}
		normalizeGroups(g.Groups)
	}
}
