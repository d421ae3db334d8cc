// Package dictionary turns a word list file into words the tree will accept.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/mmap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/milden6/wordpool"
	"github.com/milden6/wordpool/pkg/logger"
)

// Options control how lines are cleaned.
type Options struct {
	// FoldCase lowercases each line before it is checked.
	FoldCase bool
	// SkipInvalid drops lines with characters outside a to z instead of
	// failing the whole load.
	SkipInvalid bool
}

// Report counts what happened to each line.
type Report struct {
	Lines   int
	Words   int
	Blank   int
	Skipped int
}

// LineError is returned for an invalid line when SkipInvalid is off.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Load maps filename into memory and parses it.
func Load(filename string, opts Options, log logger.Logger) ([]string, Report, error) {
	f, err := mmap.Open(filename)
	if err != nil {
		return nil, Report{}, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	return Read(f, int64(f.Len()), opts, log)
}

// Read parses size bytes of a word list accessed in place through r.
func Read(r io.ReaderAt, size int64, opts Options, log logger.Logger) ([]string, Report, error) {
	return Parse(io.NewSectionReader(r, 0, size), opts, log)
}

// Parse reads one word per line. Line terminators and surrounding spaces are
// removed and blank lines ignored.
func Parse(r io.Reader, opts Options, log logger.Logger) ([]string, Report, error) {
	var (
		words  []string
		report Report
		fold   = cases.Lower(language.Und)
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		report.Lines++

		word := strings.TrimSpace(wordpool.TrimTerminators(scanner.Text()))
		if word == "" {
			report.Blank++
			continue
		}
		if opts.FoldCase {
			word = fold.String(word)
		}

		if err := wordpool.Validate(word); err != nil {
			if !opts.SkipInvalid {
				return nil, report, &LineError{Line: report.Lines, Err: err}
			}
			report.Skipped++
			log.Debug("Skipping word", "line", report.Lines, "error", err)
			continue
		}

		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, report, fmt.Errorf("read word list: %w", err)
	}

	report.Words = len(words)
	if report.Skipped > 0 {
		log.Warn("Skipped invalid words", "skipped", report.Skipped, "lines", report.Lines)
	}
	return words, report, nil
}

// IsInvalid reports whether err came from a word with a bad character.
func IsInvalid(err error) bool {
	return errors.Is(err, wordpool.ErrInvalidCharacter)
}
