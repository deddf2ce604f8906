package schema

import "go.uber.org/zap"

// Index provides id-based lookup over a document's question tree. Question
// ids are global across the whole tree; on a duplicate id the first
// occurrence in document order wins and the rest are ignored with a warning.
type Index struct {
	byID  map[string]*Question
	order []string
	path  map[string]string
}

// NewIndex walks the document and builds the question index.
func NewIndex(doc *Document) *Index {
	ix := &Index{
		byID: make(map[string]*Question),
		path: make(map[string]string),
	}
	ix.walk(doc.Groups, "")
	return ix
}

func (ix *Index) walk(groups []Group, parent string) {
	for i := range groups {
		g := &groups[i]
		path := g.Name
		if parent != "" {
			path = parent + " / " + g.Name
		}
		for j := range g.Questions {
			q := &g.Questions[j]
			if q.ID == "" {
				continue
			}
			if _, dup := ix.byID[q.ID]; dup {
				zap.L().Warn("schema: duplicate question id, keeping first",
					zap.String("question_id", q.ID),
					zap.String("group", path),
				)
				continue
			}
			ix.byID[q.ID] = q
			ix.order = append(ix.order, q.ID)
			ix.path[q.ID] = path
		}
		ix.walk(g.Groups, path)
	}
}

// Question returns the question with the given id, if any.
func (ix *Index) Question(id string) (*Question, bool) {
	q, ok := ix.byID[id]
	return q, ok
}

// Questions returns all indexed questions in document order.
func (ix *Index) Questions() []*Question {
	qs := make([]*Question, 0, len(ix.order))
	for _, id := range ix.order {
		qs = append(qs, ix.byID[id])
	}
	return qs
}

// GroupPath returns the slash-joined group path of a question's enclosing
// group, for diagnostics and listings.
func (ix *Index) GroupPath(id string) string {
	return ix.path[id]
}

// Len returns the number of indexed questions.
func (ix *Index) Len() int {
	return len(ix.order)
}
