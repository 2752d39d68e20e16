package render

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-ddmform/pkg/model"
)

// UI hint keys naming catalog entries that replace the text the DDM
// definition carries for the render locale.
const (
	HintTitleKey       = "titleKey"
	HintDescriptionKey = "descriptionKey"
	HintLabelKey       = "labelKey"
	HintPlaceholderKey = "placeholderKey"
	HintHelpTextKey    = "helpTextKey"
	// HintOptionKeyPrefix turns option values into keys: "<prefix>.<value>".
	HintOptionKeyPrefix = "enumLabelKeyPrefix"
)

// LocalizeFormModel rewrites the texts of form whose UI hints name a catalog
// key. The text from the definition is the fallback handed to opts.OnMissing
// when the key cannot be translated.
func LocalizeFormModel(form *model.FormModel, opts RenderOptions) {
	if form == nil {
		return
	}
	l := localizer{locale: opts.Locale, translator: opts.Translator, onMissing: opts.OnMissing}
	if l.onMissing == nil {
		l.onMissing = missingTranslationDefault
	}

	form.Title = l.hinted(form.UIHints, HintTitleKey, form.Title)
	form.Description = l.hinted(form.UIHints, HintDescriptionKey, form.Description)
	for i := range form.Fields {
		l.field(&form.Fields[i])
	}
}

type localizer struct {
	locale     string
	translator Translator
	onMissing  MissingTranslationHandler
}

func (l localizer) field(field *model.Field) {
	field.Label = l.hinted(field.UIHints, HintLabelKey, field.Label)
	field.Description = l.hinted(field.UIHints, HintDescriptionKey, field.Description)
	field.Placeholder = l.hinted(field.UIHints, HintPlaceholderKey, field.Placeholder)
	if help := l.hinted(field.UIHints, HintHelpTextKey, field.UIHints["helpText"]); help != "" {
		field.UIHints["helpText"] = help
	}

	if prefix := strings.TrimSpace(field.UIHints[HintOptionKeyPrefix]); prefix != "" && len(field.Enum) > 0 {
		labels := make([]string, len(field.Enum))
		for i, value := range field.Enum {
			fallback := fmt.Sprint(value)
			if i < len(field.EnumLabels) && field.EnumLabels[i] != "" {
				fallback = field.EnumLabels[i]
			}
			labels[i] = l.text(prefix+"."+fmt.Sprint(value), fallback)
		}
		field.EnumLabels = labels
		if field.Items != nil {
			field.Items.EnumLabels = labels
		}
	}

	for i := range field.Nested {
		l.field(&field.Nested[i])
	}
	if field.Items != nil {
		l.field(field.Items)
	}
}

// hinted translates the key stored under hint, or returns current unchanged
// when the hint is absent.
func (l localizer) hinted(hints map[string]string, hint, current string) string {
	key := strings.TrimSpace(hints[hint])
	if key == "" {
		return current
	}
	return l.text(key, strings.TrimSpace(current))
}

func (l localizer) text(key, fallback string) string {
	params := []any{map[string]any{"default": fallback}}
	if l.translator == nil {
		return l.onMissing(l.locale, key, params, ErrMissingTranslator)
	}
	result, err := l.translator.Translate(l.locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	return l.onMissing(l.locale, key, params, err)
}
