package engine

import (
	"strings"

	"github.com/sells-group/draft-cli/internal/answers"
	"github.com/sells-group/draft-cli/internal/schema"
)

// EffectiveValue resolves the textual value a question contributes: for
// choice questions the substituted text blocks of the checked options, for
// text questions the explicit input, inherited default_from value,
// placeholder, or empty, in that order. Tokens referencing the question
// elsewhere see this value, never the raw stored one.
func (e *Engine) EffectiveValue(id string, ans *answers.Store) string {
	q, ok := e.ix.Question(id)
	if !ok {
		return ""
	}
	return e.effectiveValue(q, ans, newPath())
}

// path tracks the questions currently being resolved. Construction rejects
// default_from cycles, but token references inside option or text blocks can
// still re-enter a question mid-resolution; those resolve to empty instead
// of recursing.
type path map[string]bool

func newPath() path { return make(path) }

func (e *Engine) effectiveValue(q *schema.Question, ans *answers.Store, p path) string {
	if p[q.ID] {
		return ""
	}
	p[q.ID] = true
	defer delete(p, q.ID)

	switch q.Type {
	case schema.SingleChoice, schema.MultiChoice:
		return e.choiceValue(q, ans, p)
	case schema.Text:
		return e.textValue(q, ans, p)
	default:
		return ""
	}
}

// choiceValue concatenates the substituted text blocks of the checked
// options in schema declaration order, blank-line separated. The synthetic
// none option contributes nothing. Option defaults only affect initial
// checked state at seeding time; an unanswered choice question is empty here.
func (e *Engine) choiceValue(q *schema.Question, ans *answers.Store, p path) string {
	raw, ok := ans.Get(q.ID)
	if !ok {
		return ""
	}

	checked := func(optionID string) bool {
		if q.Type == schema.SingleChoice {
			return raw.Option == optionID
		}
		for _, id := range raw.Options {
			if id == optionID {
				return true
			}
		}
		return false
	}

	var blocks []string
	for _, opt := range q.Options {
		if !checked(opt.ID) {
			continue
		}
		block := e.substitute(opt.TextBlock, ans, p)
		if block != "" {
			blocks = append(blocks, block)
		}
	}
	return strings.Join(blocks, "\n\n")
}

// textValue resolves a text question. A field the user has explicitly
// edited never inherits through default_from: clearing a field is a
// deliberate answer, not an invitation to re-inherit.
func (e *Engine) textValue(q *schema.Question, ans *answers.Store, p path) string {
	raw, ok := ans.Get(q.ID)
	if ok && raw.UserEdited {
		if raw.Text != "" {
			return raw.Text
		}
		return q.Placeholder
	}
	if q.DefaultFrom != "" {
		if src, ok := e.ix.Question(q.DefaultFrom); ok {
			if v := e.effectiveValue(src, ans, p); v != "" {
				return v
			}
		}
	}
	return q.Placeholder
}
