package api

import "encoding/json"

// Kind discriminates the two shapes a server reply can take after the
// tolerant parse: decoded JSON or raw body text.
type Kind int

const (
	// KindJSON means the body parsed as JSON and Value holds the decoded value.
	KindJSON Kind = iota
	// KindRaw means the body did not parse; Body holds the text unchanged.
	KindRaw
)

// Result is the tagged outcome of one API call. The body is always read in
// full and parsing never fails the call: a malformed body simply yields a
// raw result, so plain-text error pages stay visible to the caller.
type Result struct {
	kind  Kind
	value any
	body  string
}

// ParseBody reads a response body into a Result. Anything that is not valid
// JSON (including an empty body) becomes a raw result.
func ParseBody(body string) Result {
	var v any
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		return Result{kind: KindRaw, body: body}
	}
	return Result{kind: KindJSON, value: v, body: body}
}

// Kind reports whether the result carries decoded JSON or raw text.
func (r Result) Kind() Kind { return r.kind }

// Value returns the decoded JSON value; nil for raw results.
func (r Result) Value() any { return r.value }

// Body returns the response body exactly as received.
func (r Result) Body() string { return r.body }

// IsArray reports whether the result is a JSON array.
func (r Result) IsArray() bool {
	_, ok := r.value.([]any)
	return r.kind == KindJSON && ok
}

// Field looks up a top-level field of a JSON object result.
func (r Result) Field(name string) (any, bool) {
	obj, ok := r.value.(map[string]any)
	if !ok {
		return nil, false
	}
	v, ok := obj[name]
	return v, ok
}

// StringField returns a top-level field as a string, when it is one.
func (r Result) StringField(name string) (string, bool) {
	v, ok := r.Field(name)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// HasField reports whether a JSON object result carries the named field.
func (r Result) HasField(name string) bool {
	_, ok := r.Field(name)
	return ok
}

// Verbatim returns the reply for display when its shape was not the expected
// one: compact JSON for parsed results (mirroring what the server sent,
// without formatting noise) and the raw text otherwise.
func (r Result) Verbatim() string {
	if r.kind == KindRaw {
		return r.body
	}
	b, err := json.Marshal(r.value)
	if err != nil {
		return r.body
	}
	return string(b)
}
