package flats

import (
	"net/url"
	"strings"
)

// Field is a tri-state form value. A field can be absent from the request
// (leave the stored value untouched), present but blank (clear an optional
// field to null) or present with a value. The three states are modelled
// explicitly so partial updates never confuse "not sent" with "sent empty".
type Field struct {
	present bool
	value   string
}

// FieldFrom reads key from form, preserving the absent/blank/value
// distinction that url.Values.Get would collapse.
func FieldFrom(form url.Values, key string) Field {
	values, ok := form[key]
	if !ok || len(values) == 0 {
		return Field{}
	}
	return Field{present: true, value: values[0]}
}

// Present reports whether the field appeared in the request at all.
func (f Field) Present() bool { return f.present }

// Blank reports whether the field was sent empty, i.e. an explicit clear.
func (f Field) Blank() bool { return f.present && strings.TrimSpace(f.value) == "" }

// Value returns the trimmed field value.
func (f Field) Value() string { return strings.TrimSpace(f.value) }
