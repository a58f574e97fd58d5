package translator

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/rbhz/context-translator/app/clients/reverso"
	"github.com/rbhz/context-translator/app/db"
	"github.com/rbhz/context-translator/app/lang"
	"github.com/rbhz/context-translator/app/report"
)

var (
	// ErrUnsupportedLanguage is returned when source or target is not in lang.Supported
	ErrUnsupportedLanguage = errors.New("unsupported language")
	// ErrSave is returned when report file could not be written
	ErrSave = errors.New("save report")
)

// Fetcher loads translation pages
type Fetcher interface {
	URL(source, target, word string) string
	Fetch(url string) (reverso.Page, error)
}

// Writer persists rendered report
type Writer interface {
	Write(word, text string) error
}

// Query is a single translation request
type Query struct {
	Source string
	Target string
	Word   string
}

// Translator runs queries: fetches pages, assembles report, saves and prints it
type Translator struct {
	fetcher   Fetcher
	extractor reverso.Extractor
	writer    Writer
	archive   db.Storage
	out       io.Writer
}

// Run executes query. Nothing is written when fetching fails.
// User-facing messages are printed to the output before returning an error.
// A report that could not be saved is still printed
func (t *Translator) Run(q Query) (report.Report, error) {
	var rep report.Report
	if err := t.validate(q); err != nil {
		return rep, err
	}

	for _, target := range targets(q) {
		section, err := t.translate(q, target)
		if err != nil {
			t.printError(q, err)
			return report.Report{}, err
		}
		rep.Add(section)
	}

	text := rep.String()
	if err := t.writer.Write(q.Word, text); err != nil {
		fmt.Fprintf(t.out, "Sorry, unable to save %s.txt\n", q.Word)
		fmt.Fprintln(t.out, text)
		return rep, fmt.Errorf("%w: %v", ErrSave, err)
	}
	t.archiveReport(q, text)
	fmt.Fprintln(t.out, text)
	return rep, nil
}

func (t *Translator) validate(q Query) error {
	if !lang.IsSupported(q.Source) {
		return t.unsupported(q.Source)
	}
	if q.Target != lang.All && !lang.IsSupported(q.Target) {
		return t.unsupported(q.Target)
	}
	return nil
}

func (t *Translator) unsupported(language string) error {
	name := lang.Normalize(language)
	fmt.Fprintf(t.out, "Sorry, the program doesn't support %s\n", name)
	return errors.Wrap(ErrUnsupportedLanguage, name)
}

// targets resolves target languages in lang.Supported order
func targets(q Query) []string {
	if q.Target != lang.All {
		return []string{lang.Normalize(q.Target)}
	}
	result := make([]string, 0, len(lang.Supported)-1)
	for _, l := range lang.Supported {
		if !strings.EqualFold(l, q.Source) {
			result = append(result, l)
		}
	}
	return result
}

func (t *Translator) translate(q Query, target string) (report.Section, error) {
	page, err := t.fetcher.Fetch(t.fetcher.URL(q.Source, target, q.Word))
	if err != nil {
		return report.Section{}, errors.Wrapf(err, "fetch %s", target)
	}
	fmt.Fprintln(t.out, page.StatusCode, page.Status)

	extraction, err := t.extractor.Extract(bytes.NewReader(page.Body))
	if err != nil {
		return report.Section{}, errors.Wrapf(err, "extract %s", target)
	}
	if q.Target == lang.All {
		return report.NewBriefSection(target, extraction), nil
	}
	return report.NewSection(target, extraction), nil
}

func (t *Translator) printError(q Query, err error) {
	switch {
	case errors.Is(err, reverso.ErrConnection):
		fmt.Fprintln(t.out, "Something wrong with your internet connection")
	default:
		fmt.Fprintf(t.out, "Sorry, unable to find %s\n", q.Word)
	}
}

// archiveReport stores report copy. Failures are only logged
func (t *Translator) archiveReport(q Query, text string) {
	if t.archive == nil {
		return
	}
	record := db.NewRecord(q.Word, lang.Normalize(q.Source), q.Target, text)
	if err := t.archive.SaveReport(record); err != nil {
		log.Error().Err(err).Str("word", q.Word).Msg("failed to archive report")
		return
	}
	log.Debug().Str("word", q.Word).Str("id", record.ID).Msg("report archived")
}

// New creates Translator. archive may be nil
func New(fetcher Fetcher, extractor reverso.Extractor, writer Writer, archive db.Storage, out io.Writer) *Translator {
	return &Translator{
		fetcher:   fetcher,
		extractor: extractor,
		writer:    writer,
		archive:   archive,
		out:       out,
	}
}
