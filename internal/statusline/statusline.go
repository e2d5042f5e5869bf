// Package statusline turns Claude Code's status line envelope into a single
// formatted line: model, session, git branch and a context usage gauge.
package statusline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/theirongolddev/ctxline/internal/gitinfo"
	"github.com/theirongolddev/ctxline/internal/logger"
	"github.com/theirongolddev/ctxline/internal/source"
)

// BranchResolver yields a branch name for a directory, or a fallback.
type BranchResolver interface {
	BranchOr(ctx context.Context, dir string) string
}

// Renderer performs one read-compute-print pass.
type Renderer struct {
	Branches   BranchResolver
	Transcript func(path string) source.TranscriptResult
	Getwd      func() (string, error)
}

// New returns a Renderer wired to git and the filesystem.
func New() *Renderer {
	return &Renderer{
		Branches:   gitinfo.NewResolver(),
		Transcript: source.ReadTranscript,
		Getwd:      os.Getwd,
	}
}

// Render produces the status line for a raw envelope. It never fails: an
// unparseable envelope yields the error line, and branch or transcript
// failures fall back to "no-git" and zero tokens.
func (r *Renderer) Render(ctx context.Context, raw []byte) string {
	in, err := ParseInput(raw)
	if err != nil {
		logger.Errorf("parsing status line input: %v", err)
		return FormatError(err)
	}

	wd, err := r.Getwd()
	if err != nil {
		logger.Debugf("getwd: %v", err)
	}
	dir := in.Dir(wd)
	branch := r.Branches.BranchOr(ctx, dir)

	tr := r.Transcript(in.TranscriptPath)
	switch {
	case tr.Err != nil:
		logger.Debugf("transcript ignored: %v", tr.Err)
	case tr.Skipped > 0:
		logger.Debugf("transcript %s: skipped %d unreadable of %d lines", tr.Path, tr.Skipped, tr.Lines)
	}

	g := ComputeGauge(tr.TotalTokens())
	logger.Debugf("dir=%s branch=%s tokens=%d pct=%d tier=%s", dir, branch, g.TotalTokens, g.Percentage, g.Tier)

	return FormatLine(in, branch, g)
}

// Run reads the whole envelope from stdin, then writes exactly one line to
// stdout with no trailing newline. Only a failed write is returned.
func (r *Renderer) Run(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	var line string
	raw, err := io.ReadAll(stdin)
	if err != nil {
		logger.Errorf("reading stdin: %v", err)
		line = FormatError(err)
	} else {
		line = r.Render(ctx, raw)
	}

	if _, err := io.WriteString(stdout, line); err != nil {
		return fmt.Errorf("writing status line: %w", err)
	}
	return nil
}
