package answers

import (
	"os"
	"sort"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/draft-cli/internal/schema"
)

// answersFile is the on-disk answers document: a flat map of question id to
// value. Scalars answer single-choice and text questions, sequences answer
// multi-choice ones.
type answersFile struct {
	Answers map[string]yaml.Node `yaml:"answers"`
}

// LoadFile reads an answers file on top of the seeded defaults for the
// document. Entries for unknown question ids are skipped with a warning.
// Free-text entries are marked user-edited, including explicitly empty ones.
func LoadFile(path string, doc *schema.Document) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "answers: read %s", path)
	}

	var file answersFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, eris.Wrapf(err, "answers: parse %s", path)
	}

	ix := schema.NewIndex(doc)
	s := Seed(doc)

	// Deterministic application order so duplicate warnings are stable.
	ids := make([]string, 0, len(file.Answers))
	for id := range file.Answers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		node := file.Answers[id]
		q, ok := ix.Question(id)
		if !ok {
			zap.L().Warn("answers: skipping entry for unknown question",
				zap.String("question_id", id))
			continue
		}
		if err := applyNode(s, q, node); err != nil {
			return nil, eris.Wrapf(err, "answers: entry %s", id)
		}
	}
	return s, nil
}

func applyNode(s *Store, q *schema.Question, node yaml.Node) error {
	switch q.Type {
	case schema.SingleChoice:
		var opt string
		if err := node.Decode(&opt); err != nil {
			return eris.Wrap(err, "expected option id")
		}
		s.SetOption(q.ID, opt)
	case schema.MultiChoice:
		var opts []string
		if node.Kind == yaml.ScalarNode {
			var one string
			if err := node.Decode(&one); err != nil {
				return eris.Wrap(err, "expected option id")
			}
			opts = []string{one}
		} else if err := node.Decode(&opts); err != nil {
			return eris.Wrap(err, "expected option id list")
		}
		s.SetOptions(q.ID, opts)
	case schema.Text:
		var text string
		if err := node.Decode(&text); err != nil {
			return eris.Wrap(err, "expected text value")
		}
		s.SetText(q.ID, text)
	default:
		return eris.Errorf("unsupported question type %q", q.Type)
	}
	return nil
}

// SaveFile writes the store as an answers file, with entries in document
// order. Used by the init command to emit a starter file from seeded
// defaults.
func SaveFile(path string, s *Store, doc *schema.Document) error {
	ix := schema.NewIndex(doc)
	out := struct {
		Answers map[string]any `yaml:"answers"`
	}{Answers: make(map[string]any)}

	for _, q := range ix.Questions() {
		r, ok := s.Get(q.ID)
		if !ok {
			continue
		}
		switch q.Type {
		case schema.SingleChoice:
			out.Answers[q.ID] = r.Option
		case schema.MultiChoice:
			out.Answers[q.ID] = r.Options
		case schema.Text:
			out.Answers[q.ID] = r.Text
		}
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return eris.Wrap(err, "answers: marshal")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "answers: write %s", path)
	}
	return nil
}
