package flats

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldFrom(t *testing.T) {
	form := url.Values{
		"name":  {"  Carrer Mallorca 15  "},
		"price": {""},
		"area":  {"   "},
	}

	tests := []struct {
		name    string
		key     string
		present bool
		blank   bool
		value   string
	}{
		{name: "absent", key: "description", present: false, blank: false, value: ""},
		{name: "value is trimmed", key: "name", present: true, blank: false, value: "Carrer Mallorca 15"},
		{name: "empty string is blank", key: "price", present: true, blank: true, value: ""},
		{name: "whitespace only is blank", key: "area", present: true, blank: true, value: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FieldFrom(form, tt.key)
			assert.Equal(t, tt.present, f.Present())
			assert.Equal(t, tt.blank, f.Blank())
			assert.Equal(t, tt.value, f.Value())
		})
	}
}

func TestFieldFromTakesFirstValue(t *testing.T) {
	form := url.Values{"status": {"Seen", "Visited"}}
	assert.Equal(t, "Seen", FieldFrom(form, "status").Value())
}
