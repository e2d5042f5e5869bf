package statusline

import (
	"encoding/json"

	"github.com/buger/jsonparser"
)

// Defaults substituted for absent envelope fields.
const (
	DefaultModel   = "Unknown Model"
	DefaultSession = "unknown"

	sessionDisplayLen = 8
)

// Input is the status line envelope Claude Code writes to stdin.
// Fields hold their defaults when the envelope omits them.
type Input struct {
	Model          string // model.display_name
	SessionID      string // session_id, untruncated
	WorkspaceDir   string // workspace.current_dir
	Cwd            string // cwd
	TranscriptPath string // transcript_path
}

// ParseError reports stdin that is not valid JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return e.Err.Error() }

func (e *ParseError) Unwrap() error { return e.Err }

// ParseInput decodes the envelope. Only a syntax error fails; a valid
// document of the wrong shape yields an Input made of defaults. Fields whose
// values are not non-empty strings are treated as absent.
func ParseInput(raw []byte) (Input, error) {
	if err := json.Unmarshal(raw, new(json.RawMessage)); err != nil {
		return Input{}, &ParseError{Err: err}
	}

	return Input{
		Model:          stringAt(raw, DefaultModel, "model", "display_name"),
		SessionID:      stringAt(raw, DefaultSession, "session_id"),
		WorkspaceDir:   stringAt(raw, "", "workspace", "current_dir"),
		Cwd:            stringAt(raw, "", "cwd"),
		TranscriptPath: stringAt(raw, "", "transcript_path"),
	}, nil
}

func stringAt(raw []byte, fallback string, keys ...string) string {
	v, typ := lookup(raw, keys...)
	if typ != jsonparser.String {
		return fallback
	}
	s, err := jsonparser.ParseString(v)
	if err != nil || s == "" {
		return fallback
	}
	return s
}

// lookup walks keys through nested objects. When an object repeats a key the
// last occurrence wins, as with encoding/json.
func lookup(data []byte, keys ...string) ([]byte, jsonparser.ValueType) {
	typ := jsonparser.NotExist
	for _, key := range keys {
		var found []byte
		ftyp := jsonparser.NotExist
		err := jsonparser.ObjectEach(data, func(k, v []byte, t jsonparser.ValueType, _ int) error {
			if string(k) == key {
				found, ftyp = v, t
			}
			return nil
		})
		if err != nil || ftyp == jsonparser.NotExist {
			return nil, jsonparser.NotExist
		}
		data, typ = found, ftyp
	}
	return data, typ
}

// ShortSession returns the first eight characters of the session id.
// Truncation is by rune so a multi-byte id is never split mid-character.
func (in Input) ShortSession() string {
	r := []rune(in.SessionID)
	if len(r) <= sessionDisplayLen {
		return in.SessionID
	}
	return string(r[:sessionDisplayLen])
}

// Dir resolves the effective working directory: workspace.current_dir, then
// cwd, then fallback.
func (in Input) Dir(fallback string) string {
	switch {
	case in.WorkspaceDir != "":
		return in.WorkspaceDir
	case in.Cwd != "":
		return in.Cwd
	default:
		return fallback
	}
}
