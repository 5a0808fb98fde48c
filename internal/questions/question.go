package questions

// Question is a single interview prompt with the keywords a good answer
// usually touches on.
type Question struct {
	ID       string   `yaml:"id"`
	Text     string   `yaml:"text"`
	Keywords []string `yaml:"keywords"`
}

// catalog is the fixed, ordered question set. Keep the order stable: it is
// the order of the selector in the practice screen and of `questions` output.
var catalog = []Question{
	{
		ID:       "about-yourself",
		Text:     "Tell me about yourself.",
		Keywords: []string{"experience", "background", "skills", "education"},
	},
	{
		ID:       "strengths-weaknesses",
		Text:     "What are your strengths and weaknesses?",
		Keywords: []string{"strength", "weakness", "improve", "adapt"},
	},
	{
		ID:       "why-hire",
		Text:     "Why should we hire you?",
		Keywords: []string{"fit", "skills", "value", "company"},
	},
	{
		ID:       "challenge",
		Text:     "Tell me about a challenge you overcame.",
		Keywords: []string{"challenge", "problem", "solution", "learned"},
	},
	{
		ID:       "five-years",
		Text:     "Where do you see yourself in 5 years?",
		Keywords: []string{"career", "goal", "future", "growth"},
	},
}

// byText indexes catalog by exact question text.
var byText map[string]*Question

func init() {
	byText = make(map[string]*Question, len(catalog))
	for i := range catalog {
		byText[catalog[i].Text] = &catalog[i]
	}
}

// All returns a copy of every question in display order.
func All() []Question {
	out := make([]Question, len(catalog))
	for i, q := range catalog {
		q.Keywords = append([]string(nil), q.Keywords...)
		out[i] = q
	}
	return out
}

// Texts returns the question texts in display order.
func Texts() []string {
	out := make([]string, len(catalog))
	for i, q := range catalog {
		out[i] = q.Text
	}
	return out
}

// Count returns the number of questions in the catalog.
func Count() int {
	return len(catalog)
}

// At returns the question at index i in display order.
func At(i int) (Question, bool) {
	if i < 0 || i >= len(catalog) {
		return Question{}, false
	}
	q := catalog[i]
	q.Keywords = append([]string(nil), q.Keywords...)
	return q, true
}

// ByText looks a question up by its exact text.
func ByText(text string) (Question, bool) {
	q, ok := byText[text]
	if !ok {
		return Question{}, false
	}
	out := *q
	out.Keywords = append([]string(nil), q.Keywords...)
	return out, true
}

// Keywords returns the hint keywords for the question with the given exact
// text, or nil if the text is not in the catalog.
func Keywords(text string) []string {
	q, ok := byText[text]
	if !ok {
		return nil
	}
	return append([]string(nil), q.Keywords...)
}
