package report

import (
	"strings"

	"github.com/rbhz/context-translator/app/clients/reverso"
)

// Section holds translations and examples for a single target language.
// Brief sections keep only the first translation and the first example
type Section struct {
	Language     string
	Translations []string
	Examples     []reverso.Pair
	Brief        bool
}

// NewSection creates section with every extracted translation and example
func NewSection(language string, e reverso.Extraction) Section {
	return Section{
		Language:     language,
		Translations: e.Translations,
		Examples:     e.Pairs(),
	}
}

// NewBriefSection creates section with the first translation and example only
func NewBriefSection(language string, e reverso.Extraction) Section {
	s := NewSection(language, e)
	s.Brief = true
	if len(s.Translations) > 1 {
		s.Translations = s.Translations[:1]
	}
	if len(s.Examples) > 1 {
		s.Examples = s.Examples[:1]
	}
	return s
}

func (s Section) write(b *strings.Builder) {
	b.WriteString(s.Language + " Translations:\n")
	if s.Brief {
		b.WriteString(first(s.Translations) + "\n\n")
		b.WriteString(s.Language + " Examples:\n")
		var pair reverso.Pair
		if len(s.Examples) > 0 {
			pair = s.Examples[0]
		}
		b.WriteString(pair.Source + "\n" + pair.Target + "\n\n")
		return
	}
	b.WriteString(strings.Join(s.Translations, "\n") + "\n")
	b.WriteString(s.Language + " Examples:\n")
	for _, pair := range s.Examples {
		b.WriteString(pair.Source + "\n" + pair.Target + "\n\n")
	}
}

func first(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[0]
}

// Report is an ordered list of language sections
type Report struct {
	Sections []Section
}

// Add appends section to the report
func (r *Report) Add(s Section) {
	r.Sections = append(r.Sections, s)
}

// String renders report as plain text
func (r Report) String() string {
	var b strings.Builder
	for _, s := range r.Sections {
		s.write(&b)
	}
	return b.String()
}
