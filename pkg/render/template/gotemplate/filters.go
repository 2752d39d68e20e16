package gotemplate

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/flosch/pongo2/v6"
)

// filterCSSVars renders a map of custom properties as a declaration list
// sorted by name, e.g. "--a: 1; --b: 2;". Render data arrives JSON decoded,
// so values are usually map[string]any.
func filterCSSVars(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	var vars map[string]string
	switch v := in.Interface().(type) {
	case map[string]string:
		vars = v
	case map[string]any:
		vars = make(map[string]string, len(v))
		for name, value := range v {
			vars[name] = fmt.Sprint(value)
		}
	}
	if len(vars) == 0 {
		return pongo2.AsValue(""), nil
	}

	var b strings.Builder
	for i, name := range slices.Sorted(maps.Keys(vars)) {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(vars[name])
		b.WriteByte(';')
	}
	return pongo2.AsValue(b.String()), nil
}
