package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var errNotObject = errors.New("artifact must be a JSON object")

// document is the JSON text an artifact was decoded from. Generated artifacts
// are stored and served exactly as the model wrote them; the typed fields
// next to it are a best-effort view used to build prompts.
type document struct {
	raw json.RawMessage
}

// Raw returns the JSON the artifact was decoded from, or nil for artifacts
// built in code.
func (d document) Raw() json.RawMessage { return d.raw }

func compactObject(b []byte) (json.RawMessage, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '{' {
		return nil, errNotObject
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, b); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// lenient drops type mismatches. encoding/json keeps filling the remaining
// fields after one, so the view is as complete as the document allows.
func lenient(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return nil
	}
	return err
}

// looseNumber reads a number that may have been written as a string ("85", "85%").
func looseNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(n), "%"), 64)
		return f, err == nil
	}
	return 0, false
}

// looseScore recovers the "score" key of obj when the typed decode could not.
func looseScore(obj []byte, decoded float64) float64 {
	if decoded != 0 {
		return decoded
	}
	var s struct {
		Score any `json:"score"`
	}
	if json.Unmarshal(obj, &s) != nil {
		return decoded
	}
	if f, ok := looseNumber(s.Score); ok {
		return f
	}
	return decoded
}

// looseText renders any scalar as text.
func looseText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	}
	b, _ := json.Marshal(v)
	return string(b)
}
