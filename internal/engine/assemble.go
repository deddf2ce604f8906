package engine

import (
	"strings"

	"github.com/sells-group/draft-cli/internal/answers"
	"github.com/sells-group/draft-cli/internal/schema"
)

// Render assembles the full document: substituted intro, the recursive group
// walk, substituted outro. Absent intro or outro segments are omitted
// entirely rather than leaving stray blank lines.
func (e *Engine) Render(ans *answers.Store) string {
	var b strings.Builder

	if intro := strings.TrimSpace(e.Substitute(e.doc.IntroText, ans)); intro != "" {
		b.WriteString(intro)
		b.WriteString("\n\n")
	}

	b.WriteString(e.renderGroups(e.doc.Groups, ans, 0))

	if outro := strings.TrimSpace(e.Substitute(e.doc.OutroText, ans)); outro != "" {
		b.WriteString(outro)
		b.WriteString("\n")
	}

	return b.String()
}

// renderGroups walks groups in document order. A group contributes iff its
// own questions or any subgroup produced text; only then is its heading
// emitted, so the output never contains orphan section titles. Heading depth
// is a function of nesting depth alone.
func (e *Engine) renderGroups(groups []schema.Group, ans *answers.Store, level int) string {
	var b strings.Builder
	for i := range groups {
		g := &groups[i]

		var groupBody strings.Builder
		for j := range g.Questions {
			groupBody.WriteString(e.contribution(&g.Questions[j], ans))
		}
		childBody := e.renderGroups(g.Groups, ans, level+1)

		if strings.TrimSpace(groupBody.String()+childBody) == "" {
			continue
		}
		if g.ShowHeading() {
			b.WriteString(strings.Repeat("#", level+2))
			b.WriteString(" ")
			b.WriteString(g.Name)
			b.WriteString("\n\n")
		}
		b.WriteString(groupBody.String())
		b.WriteString(childBody)
	}
	return b.String()
}

// contribution renders one question's share of its group body: nothing when
// the question is hidden or resolves empty, otherwise pre-text, the
// substituted block, post-text, and a trailing blank line. Hidden questions
// are skipped before their stored answers are ever consulted, so leftover
// selections cannot leak into the output.
func (e *Engine) contribution(q *schema.Question, ans *answers.Store) string {
	if !e.isVisible(q, ans) {
		return ""
	}

	p := newPath()
	value := e.effectiveValue(q, ans, p)
	if value == "" {
		return ""
	}

	block := value
	if q.Type == schema.Text && q.TextBlock != "" {
		block = strings.ReplaceAll(q.TextBlock, UserInputToken, value)
		block = e.substitute(block, ans, p)
	}

	return q.PreText + block + q.PostText + "\n\n"
}
