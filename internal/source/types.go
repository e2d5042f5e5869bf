package source

import "github.com/theirongolddev/ctxline/internal/model"

// Key paths into a transcript line.
var (
	usagePath = []string{"message", "usage"}

	keyInputTokens   = "input_tokens"
	keyOutputTokens  = "output_tokens"
	keyCacheCreation = "cache_creation_input_tokens"
	keyCacheRead     = "cache_read_input_tokens"
)

// TranscriptResult holds the output of summing a single JSONL transcript.
type TranscriptResult struct {
	Path       string
	Usage      model.Usage
	Lines      int // non-blank lines seen
	UsageLines int // lines that carried a message.usage object
	Skipped    int // lines that were not valid JSON
	Err        error
}

// TotalTokens is the sum of all usage counters across the transcript.
func (r TranscriptResult) TotalTokens() int64 {
	return r.Usage.Total()
}
