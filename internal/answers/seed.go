package answers

import "github.com/sells-group/draft-cli/internal/schema"

// Seed builds the initial answer store for a document, applying declared
// option defaults: the first default option of a single-choice question is
// pre-selected, every default option of a multi-choice question is
// pre-checked. Text questions start unanswered; default_from inheritance is
// resolved live by the engine, not copied into the store.
func Seed(doc *schema.Document) *Store {
	s := NewStore()
	ix := schema.NewIndex(doc)
	for _, q := range ix.Questions() {
		switch q.Type {
		case schema.SingleChoice:
			for _, opt := range q.Options {
				if opt.Default {
					s.SetOption(q.ID, opt.ID)
					break
				}
			}
		case schema.MultiChoice:
			var ids []string
			for _, opt := range q.Options {
				if opt.Default {
					ids = append(ids, opt.ID)
				}
			}
			if len(ids) > 0 {
				s.SetOptions(q.ID, ids)
			}
		}
	}
	return s
}
