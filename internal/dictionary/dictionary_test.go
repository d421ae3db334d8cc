package dictionary

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milden6/wordpool"
	"github.com/milden6/wordpool/pkg/logger"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		opts   Options
		words  []string
		report Report
	}{
		{
			name:   "plain",
			input:  "cat\ndog\n",
			words:  []string{"cat", "dog"},
			report: Report{Lines: 2, Words: 2},
		},
		{
			name:   "crlf_and_blanks",
			input:  "cat\r\n\r\n  dog  \r\n\n",
			words:  []string{"cat", "dog"},
			report: Report{Lines: 4, Words: 2, Blank: 2},
		},
		{
			name:   "fold_case",
			input:  "Cat\nDOG\n",
			opts:   Options{FoldCase: true},
			words:  []string{"cat", "dog"},
			report: Report{Lines: 2, Words: 2},
		},
		{
			name:   "skip_invalid",
			input:  "cat\nl'amour\nforget-me-not\ndog",
			opts:   Options{SkipInvalid: true},
			words:  []string{"cat", "dog"},
			report: Report{Lines: 4, Words: 2, Skipped: 2},
		},
		{
			name:   "empty",
			input:  "",
			report: Report{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words, report, err := Parse(strings.NewReader(tt.input), tt.opts, logger.NewNop())
			require.NoError(t, err)
			assert.Equal(t, tt.words, words)
			assert.Equal(t, tt.report, report)
		})
	}
}

func TestParse_InvalidLine(t *testing.T) {
	_, _, err := Parse(strings.NewReader("cat\nDog\n"), Options{}, logger.NewNop())
	require.Error(t, err)

	var lineErr *LineError
	require.True(t, errors.As(err, &lineErr))
	assert.Equal(t, 2, lineErr.Line)
	assert.True(t, IsInvalid(err))

	var invalid *wordpool.InvalidCharacterError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, 'D', invalid.Char)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("zoo\nat\ncat\ncats\n"), 0644))

	words, report, err := Load(path, Options{}, logger.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"zoo", "at", "cat", "cats"}, words)
	assert.Equal(t, 4, report.Words)

	tree, err := wordpool.New(words)
	require.NoError(t, err)
	assert.Equal(t, 4, tree.NumWords())
}

func TestLoad_Missing(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.txt"), Options{}, logger.NewNop())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
