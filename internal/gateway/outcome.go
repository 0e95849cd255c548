package gateway

// OutcomeKind discriminates the payload shape of a completed call.
type OutcomeKind int

const (
	// KindJSON marks a response body parsed as a JSON value.
	KindJSON OutcomeKind = iota
	// KindText marks a non-JSON response body returned verbatim.
	KindText
)

// Outcome is the value produced by a successful call: either a decoded
// JSON value (object, array, or scalar) or the raw body text when the body
// does not parse as JSON. Failures are returned as errors, not outcomes,
// so callers switch on Kind only for the success shapes.
type Outcome struct {
	kind OutcomeKind
	json any
	text string
}

// JSONOutcome wraps a parsed JSON value.
func JSONOutcome(v any) Outcome {
	return Outcome{kind: KindJSON, json: v}
}

// TextOutcome wraps a raw non-JSON body.
func TextOutcome(s string) Outcome {
	return Outcome{kind: KindText, text: s}
}

// Kind returns the outcome discriminator.
func (o Outcome) Kind() OutcomeKind {
	return o.kind
}

// IsJSON reports whether the outcome carries a decoded JSON value.
func (o Outcome) IsJSON() bool {
	return o.kind == KindJSON
}

// IsText reports whether the outcome carries a raw text body.
func (o Outcome) IsText() bool {
	return o.kind == KindText
}

// JSON returns the decoded value for JSON outcomes, nil otherwise.
func (o Outcome) JSON() any {
	if o.kind != KindJSON {
		return nil
	}
	return o.json
}

// Text returns the raw body for text outcomes, empty otherwise.
func (o Outcome) Text() string {
	if o.kind != KindText {
		return ""
	}
	return o.text
}
