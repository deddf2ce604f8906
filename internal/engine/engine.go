// Package engine computes effective answer values, question visibility, and
// the assembled document text for a questionnaire. Every entry point is a
// pure function of (schema, answers): the engine holds no mutable state and
// is re-invoked in full after each answer change.
package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/draft-cli/internal/schema"
)

// Engine renders documents from a questionnaire definition and an answer
// store. Construction validates the schema; a default_from cycle is rejected
// here so render passes never loop.
type Engine struct {
	doc *schema.Document
	ix  *schema.Index
	now func() time.Time
	loc localeLayouts
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source for the builtin date and time tokens.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLocale selects date and time layouts for the builtin tokens from a
// BCP 47 tag such as "en-US" or "de". Unknown tags fall back to ISO layouts.
func WithLocale(tag string) Option {
	return func(e *Engine) { e.loc = layoutsFor(tag) }
}

// New validates the document and builds an engine over it. Validation
// warnings (dangling references, duplicate ids) are logged and rendering
// degrades around them; a *schema.CycleError is returned as-is.
func New(doc *schema.Document, opts ...Option) (*Engine, error) {
	warnings, err := schema.Validate(doc)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		zap.L().Warn("engine: schema warning",
			zap.String("question_id", w.QuestionID),
			zap.String("problem", w.Message),
		)
	}

	e := &Engine{
		doc: doc,
		ix:  schema.NewIndex(doc),
		now: time.Now,
		loc: layoutsFor(""),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Document returns the questionnaire definition the engine renders.
func (e *Engine) Document() *schema.Document {
	return e.doc
}

// Questions returns all questions in document order.
func (e *Engine) Questions() []*schema.Question {
	return e.ix.Questions()
}

// Question returns the question with the given id, if any.
func (e *Engine) Question(id string) (*schema.Question, bool) {
	return e.ix.Question(id)
}

// GroupPath returns the group path of a question, for listings.
func (e *Engine) GroupPath(id string) string {
	return e.ix.GroupPath(id)
}
