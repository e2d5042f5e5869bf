// Package source reads Claude Code JSONL transcripts and sums their token usage.
package source

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/buger/jsonparser"

	"github.com/theirongolddev/ctxline/internal/model"
)

// ErrMalformedLine is returned by ParseUsageLine for lines that are not valid JSON.
var ErrMalformedLine = errors.New("malformed transcript line")

// maxLineSize bounds a single transcript line. Assistant entries embedding
// large tool results can run to several megabytes. Longer lines are skipped
// without being buffered in full.
var maxLineSize = 32 * 1024 * 1024

// ReadTranscript sums message.usage counters across every line of a JSONL
// transcript. Malformed and oversized lines are skipped and counted. A failure
// to open or read the file is reported in Err with the usage left at zero.
//
// An empty path means no transcript was supplied and is not an error.
func ReadTranscript(path string) TranscriptResult {
	if path == "" {
		return TranscriptResult{}
	}

	f, err := os.Open(path) //nolint:gosec // path comes from the host's stdin envelope
	if err != nil {
		return TranscriptResult{Path: path, Err: fmt.Errorf("opening transcript: %w", err)}
	}
	defer func() { _ = f.Close() }()

	result := TranscriptResult{Path: path}
	r := bufio.NewReaderSize(f, 256*1024)

	for {
		raw, tooLong, err := readLine(r)
		if err != nil && !errors.Is(err, io.EOF) {
			return TranscriptResult{Path: path, Err: fmt.Errorf("reading transcript: %w", err)}
		}

		if line := bytes.TrimSpace(raw); tooLong {
			result.Lines++
			result.Skipped++
		} else if len(line) > 0 {
			result.Lines++
			u, ok, perr := ParseUsageLine(line)
			switch {
			case perr != nil:
				result.Skipped++
			case ok:
				result.UsageLines++
				result.Usage.Add(u)
			}
		}

		if err != nil {
			return result
		}
	}
}

// readLine returns the next newline-terminated line from r. A line longer
// than maxLineSize is drained and reported with tooLong set and no content.
// err is io.EOF after the final line.
func readLine(r *bufio.Reader) (line []byte, tooLong bool, err error) {
	for {
		chunk, rerr := r.ReadSlice('\n')
		if !tooLong {
			if len(line)+len(chunk) > maxLineSize {
				tooLong, line = true, nil
			} else {
				line = append(line, chunk...)
			}
		}
		if errors.Is(rerr, bufio.ErrBufferFull) {
			continue
		}
		return line, tooLong, rerr
	}
}

// ParseUsageLine extracts the usage counters from one transcript line.
// ok is false when the line is valid JSON without an object at message.usage.
// Counters that are absent or not numbers count as zero.
func ParseUsageLine(line []byte) (u model.Usage, ok bool, err error) {
	if !json.Valid(line) {
		return model.Usage{}, false, ErrMalformedLine
	}

	usage, typ, _, err := jsonparser.Get(line, usagePath...)
	if err != nil || typ != jsonparser.Object {
		return model.Usage{}, false, nil
	}

	return model.Usage{
		InputTokens:              counter(usage, keyInputTokens),
		OutputTokens:             counter(usage, keyOutputTokens),
		CacheCreationInputTokens: counter(usage, keyCacheCreation),
		CacheReadInputTokens:     counter(usage, keyCacheRead),
	}, true, nil
}

// counter reads one numeric field from a usage object. Fractional values are
// rounded and negative values are treated as zero so the running total never
// decreases.
func counter(usage []byte, key string) int64 {
	raw, typ, _, err := jsonparser.Get(usage, key)
	if err != nil || typ != jsonparser.Number {
		return 0
	}
	if n, err := jsonparser.ParseInt(raw); err == nil {
		return max(n, 0)
	}

	f, err := jsonparser.ParseFloat(raw)
	if err != nil || f <= 0 {
		return 0
	}
	if f >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(math.Round(f))
}
