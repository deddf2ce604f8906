package schema

import (
	"fmt"
	"strings"
)

// Warning flags a schema problem that rendering degrades around rather than
// failing on: dangling references resolve to empty, duplicate ids keep the
// first definition.
type Warning struct {
	QuestionID string
	Message    string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.QuestionID, w.Message)
}

// CycleError reports a default_from chain that loops back on itself. This is
// a fatal configuration error: the chain has no resolvable value.
type CycleError struct {
	QuestionID string
	Chain      []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("schema: default_from cycle at question %q (%s)",
		e.QuestionID, strings.Join(e.Chain, " -> "))
}

// Validate checks reference integrity across the document. Dangling
// default_from and condition targets and duplicate question ids are returned
// as warnings; a default_from cycle is returned as a *CycleError.
func Validate(doc *Document) ([]Warning, error) {
	ix := NewIndex(doc)

	var warnings []Warning
	seen := make(map[string]bool)
	walkQuestions(doc.Groups, func(q *Question) {
		if q.ID == "" {
			warnings = append(warnings, Warning{Message: "question without id"})
			return
		}
		if seen[q.ID] {
			warnings = append(warnings, Warning{QuestionID: q.ID, Message: "duplicate question id"})
			return
		}
		seen[q.ID] = true

		if q.DefaultFrom != "" {
			if _, ok := ix.Question(q.DefaultFrom); !ok {
				warnings = append(warnings, Warning{
					QuestionID: q.ID,
					Message:    fmt.Sprintf("default_from references unknown question %q", q.DefaultFrom),
				})
			}
		}
		for _, c := range q.Conditions {
			if _, ok := ix.Question(c.QuestionID); !ok {
				warnings = append(warnings, Warning{
					QuestionID: q.ID,
					Message:    fmt.Sprintf("condition references unknown question %q (question stays hidden)", c.QuestionID),
				})
			}
		}
	})

	if err := findDefaultFromCycle(ix); err != nil {
		return warnings, err
	}
	return warnings, nil
}

func walkQuestions(groups []Group, fn func(q *Question)) {
	for i := range groups {
		g := &groups[i]
		for j := range g.Questions {
			fn(&g.Questions[j])
		}
		walkQuestions(g.Groups, fn)
	}
}

// findDefaultFromCycle follows every default_from chain. Chains are single
// edges per question, so each walk either terminates, hits a dangling id, or
// revisits a question already on the current path.
func findDefaultFromCycle(ix *Index) error {
	done := make(map[string]bool)
	for _, q := range ix.Questions() {
		if done[q.ID] || q.DefaultFrom == "" {
			continue
		}
		onPath := make(map[string]bool)
		var chain []string
		cur := q
		for {
			if done[cur.ID] {
				break
			}
			if onPath[cur.ID] {
				return &CycleError{QuestionID: cur.ID, Chain: append(chain, cur.ID)}
			}
			onPath[cur.ID] = true
			chain = append(chain, cur.ID)
			if cur.DefaultFrom == "" {
				break
			}
			next, ok := ix.Question(cur.DefaultFrom)
			if !ok {
				break
			}
			cur = next
		}
		for id := range onPath {
			done[id] = true
		}
	}
	return nil
}
