package parser

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-ddmform/pkg/ddm"
	"github.com/goliatone/go-ddmform/pkg/locale"
)

// Attribute names with a dedicated Field member. Everything else lands in
// Field.Attributes.
var knownAttributes = map[string]struct{}{
	"name":       {},
	"dataType":   {},
	"type":       {},
	"indexType":  {},
	"readOnly":   {},
	"repeatable": {},
	"required":   {},
	"showLabel":  {},
	"multiple":   {},
	"width":      {},
}

const (
	entryLabel           = "label"
	entryTip             = "tip"
	entryPredefinedValue = "predefinedValue"
	entryPlaceholder     = "placeholder"
)

type localeContext struct {
	requested string
	fallback  string
}

func (p *Parser) buildField(el *element, ctx localeContext) ddm.Field {
	field := ddm.Field{
		Name:       strings.TrimSpace(el.attrs["name"]),
		DataType:   ddm.ParseDataType(el.attrs["dataType"]),
		EditorType: ddm.ParseEditorType(el.attrs["type"]),
		IndexType:  strings.TrimSpace(el.attrs["indexType"]),
		Width:      strings.TrimSpace(el.attrs["width"]),
		ReadOnly:   boolAttr(el, "readOnly", false),
		Repeatable: boolAttr(el, "repeatable", false),
		Required:   boolAttr(el, "required", false),
		ShowLabel:  boolAttr(el, "showLabel", true),
		Multiple:   boolAttr(el, "multiple", false),
	}

	for name, value := range el.attrs {
		if _, known := knownAttributes[name]; known {
			continue
		}
		if field.Attributes == nil {
			field.Attributes = make(map[string]string)
		}
		field.Attributes[name] = value
	}

	entries := localizedEntries(el, ctx)
	for name, value := range entries {
		switch name {
		case entryLabel:
			field.Label = value
		case entryTip:
			field.Tip = value
		case entryPredefinedValue:
			field.PredefinedValue = value
		case entryPlaceholder:
			field.Placeholder = value
		default:
			if field.Attributes == nil {
				field.Attributes = make(map[string]string)
			}
			field.Attributes[name] = value
		}
	}
	if field.Label == "" && p.labeler != nil {
		field.Label = p.labeler(field.Name)
	}

	for _, child := range el.childrenNamed(dynamicElement) {
		if isOption(child) {
			field.Options = append(field.Options, buildOption(child, ctx))
			continue
		}
		field.Fields = append(field.Fields, p.buildField(child, ctx))
	}

	if field.DataType == ddm.DataTypeUnsupported && field.EditorType.HasOptions() {
		field.DataType = ddm.DataTypeString
	}
	return field
}

func buildOption(el *element, ctx localeContext) ddm.Option {
	opt := ddm.Option{
		Name:  strings.TrimSpace(el.attrs["name"]),
		Value: el.attrs["value"],
	}
	opt.Label = localizedEntries(el, ctx)[entryLabel]
	if opt.Label == "" {
		opt.Label = opt.Value
	}
	return opt
}

// localizedEntries returns the entries of the meta-data block that best
// matches the requested locale: exact, then same language, then the
// definition default, then the first block.
func localizedEntries(el *element, ctx localeContext) map[string]string {
	blocks := el.childrenNamed(metadataElement)
	if len(blocks) == 0 {
		return nil
	}

	locales := make([]string, len(blocks))
	for i, block := range blocks {
		locales[i] = block.attrs["locale"]
	}

	idx := locale.Match(ctx.requested, locales, ctx.fallback)
	if idx < 0 {
		idx = 0
	}

	entries := make(map[string]string)
	for _, entry := range blocks[idx].childrenNamed(entryElement) {
		name := strings.TrimSpace(entry.attrs["name"])
		if name == "" {
			continue
		}
		entries[name] = strings.TrimSpace(entry.text.String())
	}
	return entries
}

func boolAttr(el *element, name string, fallback bool) bool {
	raw, ok := el.attr(name)
	if !ok {
		return fallback
	}
	v, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil {
		return fallback
	}
	return v
}
