package ddm

import "testing"

func TestDefaultLabeler(t *testing.T) {
	cases := map[string]string{
		"":            "",
		"A_Text":      "A Text",
		"firstName":   "First Name",
		"Text1234":    "Text 1234",
		"ZIP-code":    "Zip Code",
		"  spaced  ":  "Spaced",
		"número_casa": "Número Casa",
		"__":          "",
	}
	for name, want := range cases {
		if got := DefaultLabeler(name); got != want {
			t.Errorf("DefaultLabeler(%q) = %q, want %q", name, got, want)
		}
	}
}
