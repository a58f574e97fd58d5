package reverso

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
)

const (
	selectorTranslations = "div#translations-content > a.translation"
	selectorSources      = "div.example > div.src.ltr > span"
	selectorTargets      = "div.example > div.trg > span"
)

// Pair is a source example aligned with its translation
type Pair struct {
	Source string
	Target string
}

// Extraction holds data scraped from a single translation page
type Extraction struct {
	Translations []string
	Sources      []string
	Targets      []string
}

// Pairs zips source and target examples, stopping at the shorter list
func (e Extraction) Pairs() []Pair {
	n := len(e.Sources)
	if len(e.Targets) < n {
		n = len(e.Targets)
	}
	pairs := make([]Pair, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, Pair{Source: e.Sources[i], Target: e.Targets[i]})
	}
	return pairs
}

// Extractor turns translation page into Extraction
type Extractor interface {
	Extract(r io.Reader) (Extraction, error)
}

// HTMLExtractor extracts data using Reverso Context page markup.
// Pages not matching the markup produce empty results, not an error
type HTMLExtractor struct{}

// Extract parses HTML document and selects translations and examples
func (HTMLExtractor) Extract(r io.Reader) (Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Extraction{}, errors.Wrap(err, "parse html")
	}
	return Extraction{
		Translations: selectTexts(doc, selectorTranslations),
		Sources:      selectTexts(doc, selectorSources),
		Targets:      selectTexts(doc, selectorTargets),
	}, nil
}

func selectTexts(doc *goquery.Document, selector string) []string {
	texts := []string{}
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		if text := normalizeText(s.Text()); text != "" {
			texts = append(texts, text)
		}
	})
	return texts
}

func normalizeText(s string) string {
	return strings.TrimSpace(strings.Trim(s, "\r\n"))
}
