package engine

import (
	"strings"

	"github.com/sells-group/draft-cli/internal/answers"
	"github.com/sells-group/draft-cli/internal/schema"
)

// IsVisible reports whether a question's conditions are all satisfied by the
// current answers. A question with no conditions is always visible; an
// unknown question id is not.
func (e *Engine) IsVisible(id string, ans *answers.Store) bool {
	q, ok := e.ix.Question(id)
	if !ok {
		return false
	}
	return e.isVisible(q, ans)
}

// Visibility computes the visibility flag for every question in the schema.
// The presentation layer consumes this after each answer change to show and
// hide controls; one change can flip dependents of dependents, so the whole
// map is always recomputed.
func (e *Engine) Visibility(ans *answers.Store) map[string]bool {
	vis := make(map[string]bool, e.ix.Len())
	for _, q := range e.ix.Questions() {
		vis[q.ID] = e.isVisible(q, ans)
	}
	return vis
}

func (e *Engine) isVisible(q *schema.Question, ans *answers.Store) bool {
	for _, c := range q.Conditions {
		if !e.conditionMet(c, ans) {
			return false
		}
	}
	return true
}

// conditionMet compares the referenced question's raw selection (choice
// types) or trimmed effective value (text type) against the required value.
// A dangling reference is an unmet condition, never an error: the dependent
// question simply stays hidden.
func (e *Engine) conditionMet(c schema.Condition, ans *answers.Store) bool {
	target, ok := e.ix.Question(c.QuestionID)
	if !ok {
		return false
	}

	switch target.Type {
	case schema.SingleChoice:
		raw, ok := ans.Get(target.ID)
		if !ok {
			return false
		}
		// The empty string denotes the checked none option.
		return raw.Option == c.Value
	case schema.MultiChoice:
		raw, ok := ans.Get(target.ID)
		if !ok {
			return false
		}
		for _, id := range raw.Options {
			if id == c.Value {
				return true
			}
		}
		return false
	case schema.Text:
		v := e.effectiveValue(target, ans, newPath())
		return strings.TrimSpace(v) == c.Value
	default:
		return false
	}
}
