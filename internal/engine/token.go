package engine

import (
	"regexp"
	"strings"

	"golang.org/x/text/language"

	"github.com/sells-group/draft-cli/internal/answers"
)

// UserInputToken marks where the raw answer is spliced into a text
// question's text block. It is replaced before generic token substitution
// and is not a generic token itself.
const UserInputToken = "[USER_INPUT]"

// tokenPattern matches well-formed [identifier] spans. Unbalanced brackets
// never match and are left verbatim in the output.
var tokenPattern = regexp.MustCompile(`\[([^\[\]]+)\]`)

// Substitute rewrites every [identifier] token in text: question ids resolve
// to their effective value, builtin names to the current date or time, and
// anything else to the empty string. Substitution is single-pass; resolved
// values are not re-scanned for nested tokens.
func (e *Engine) Substitute(text string, ans *answers.Store) string {
	return e.substitute(text, ans, newPath())
}

func (e *Engine) substitute(text string, ans *answers.Store, p path) string {
	if !strings.Contains(text, "[") {
		return text
	}
	return tokenPattern.ReplaceAllStringFunc(text, func(match string) string {
		name := match[1 : len(match)-1]
		if q, ok := e.ix.Question(name); ok {
			return e.effectiveValue(q, ans, p)
		}
		return e.builtin(name)
	})
}

// builtin resolves the fixed set of non-question tokens. Unknown names
// substitute to empty by contract.
func (e *Engine) builtin(name string) string {
	now := e.now()
	switch name {
	case "DATE", "CURRENT_DATE":
		return now.Format(e.loc.date)
	case "TIME", "CURRENT_TIME":
		return now.Format(e.loc.time)
	case "DATETIME", "CURRENT_DATETIME":
		return now.Format(e.loc.date + " " + e.loc.time)
	default:
		return ""
	}
}

// localeLayouts holds the date and time layouts the builtin tokens format
// with.
type localeLayouts struct {
	date string
	time string
}

var localeTable = []struct {
	tag     language.Tag
	layouts localeLayouts
}{
	{language.Und, localeLayouts{date: "2006-01-02", time: "15:04"}},
	{language.AmericanEnglish, localeLayouts{date: "January 2, 2006", time: "3:04 PM"}},
	{language.BritishEnglish, localeLayouts{date: "2 January 2006", time: "15:04"}},
	{language.German, localeLayouts{date: "02.01.2006", time: "15:04"}},
	{language.French, localeLayouts{date: "02/01/2006", time: "15:04"}},
	{language.Spanish, localeLayouts{date: "02/01/2006", time: "15:04"}},
	{language.Dutch, localeLayouts{date: "02-01-2006", time: "15:04"}},
}

var localeMatcher = language.NewMatcher(func() []language.Tag {
	tags := make([]language.Tag, len(localeTable))
	for i, entry := range localeTable {
		tags[i] = entry.tag
	}
	return tags
}())

// layoutsFor picks layouts for a BCP 47 tag. Parse failures and unmatched
// tags get the ISO fallback.
func layoutsFor(tag string) localeLayouts {
	if tag == "" {
		return localeTable[0].layouts
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return localeTable[0].layouts
	}
	_, index, _ := localeMatcher.Match(parsed)
	return localeTable[index].layouts
}
