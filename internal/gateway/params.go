package gateway

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
)

// Params maps parameter names to scalar values, sequences of scalars, or
// nil. Nil entries are dropped during encoding; sequence entries expand
// into one pair per element under the same key, preserving element order;
// []byte values are decoded to UTF-8 text so binary-looking input encodes
// identically to the equivalent string.
type Params map[string]any

type pair struct {
	key   string
	value string
}

// flatten expands the mapping into an ordered pair sequence. Entries are
// visited in map iteration order; no sorting is applied.
func (p Params) flatten() []pair {
	pairs := make([]pair, 0, len(p))
	for key, value := range p {
		if value == nil {
			continue
		}
		if b, ok := value.([]byte); ok {
			pairs = append(pairs, pair{key, string(b)})
			continue
		}
		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.Slice, reflect.Array:
			for i := 0; i < rv.Len(); i++ {
				pairs = append(pairs, pair{key, formatScalar(rv.Index(i).Interface())})
			}
		default:
			pairs = append(pairs, pair{key, formatScalar(value)})
		}
	}
	return pairs
}

// Encode percent-encodes the flattened pairs and joins them with "&".
// url.Values is deliberately not used here: its Encode sorts keys, and the
// wire format must follow the mapping's own order.
func (p Params) Encode() string {
	pairs := p.flatten()
	if len(pairs) == 0 {
		return ""
	}

	var b strings.Builder
	for i, pr := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(pr.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(pr.value))
	}
	return b.String()
}

// formatScalar renders a scalar parameter value as text. Byte strings are
// decoded rather than rendered as a digit list.
func formatScalar(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// buildURL appends the encoded parameters as a query string. An empty
// parameter set leaves the URL untouched, with no trailing "?".
func buildURL(rawURL string, params Params) string {
	encoded := params.Encode()
	if encoded == "" {
		return rawURL
	}
	return rawURL + "?" + encoded
}
