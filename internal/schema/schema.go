package schema

// QuestionType identifies how a question is answered.
type QuestionType string

const (
	// SingleChoice questions select exactly one option (or none).
	SingleChoice QuestionType = "single_choice"
	// MultiChoice questions select any number of options.
	MultiChoice QuestionType = "multi_choice"
	// Text questions take free-form input.
	Text QuestionType = "text"
)

// Document is the top-level questionnaire definition.
type Document struct {
	Title         string   `yaml:"title" json:"title"`
	Introduction  string   `yaml:"introduction" json:"introduction"`
	IntroText     string   `yaml:"intro_text" json:"intro_text"`
	OutroText     string   `yaml:"outro_text" json:"outro_text"`
	SectionTitles []string `yaml:"section_titles" json:"section_titles,omitempty"`
	Groups        []Group  `yaml:"groups" json:"groups"`
}

// Group is a named document section holding questions and nested subgroups.
type Group struct {
	Name      string     `yaml:"group_name" json:"group_name"`
	ShowName  *bool      `yaml:"show_group_name" json:"show_group_name,omitempty"`
	Questions []Question `yaml:"questions" json:"questions,omitempty"`
	Groups    []Group    `yaml:"groups" json:"groups,omitempty"`
}

// ShowHeading reports whether the group's name should be emitted as a
// heading when the group contributes content. Defaults to true.
func (g *Group) ShowHeading() bool {
	return g.ShowName == nil || *g.ShowName
}

// Question is a single prompt in the questionnaire.
type Question struct {
	ID          string       `yaml:"id" json:"id"`
	Type        QuestionType `yaml:"type" json:"type"`
	Prompt      string       `yaml:"question" json:"question"`
	PreText     string       `yaml:"pre_text" json:"pre_text,omitempty"`
	PostText    string       `yaml:"post_text" json:"post_text,omitempty"`
	TextBlock   string       `yaml:"text_block" json:"text_block,omitempty"`
	Placeholder string       `yaml:"placeholder" json:"placeholder,omitempty"`
	Multiline   bool         `yaml:"multiline" json:"multiline,omitempty"`
	DefaultFrom string       `yaml:"default_from" json:"default_from,omitempty"`
	NoneOption  string       `yaml:"none_option" json:"none_option,omitempty"`
	Conditions  []Condition  `yaml:"conditions" json:"conditions,omitempty"`
	Options     []Option     `yaml:"options" json:"options,omitempty"`
}

// IsChoice reports whether the question selects from options.
func (q *Question) IsChoice() bool {
	return q.Type == SingleChoice || q.Type == MultiChoice
}

// Option is one selectable answer of a choice question.
type Option struct {
	ID        string `yaml:"id" json:"id"`
	Label     string `yaml:"label" json:"label"`
	TextBlock string `yaml:"text_block" json:"text_block"`
	Default   bool   `yaml:"default" json:"default,omitempty"`
}

// Condition gates a question's visibility on another question's current
// selection (choice types) or trimmed value (text type). All conditions on
// a question must hold for it to be visible.
type Condition struct {
	QuestionID string `yaml:"id" json:"id"`
	Value      string `yaml:"value" json:"value"`
}
