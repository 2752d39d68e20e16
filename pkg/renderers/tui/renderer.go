package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-ddmform/pkg/model"
	"github.com/goliatone/go-ddmform/pkg/render"
)

const (
	dateLayout     = "2006-01-02"
	metadataSecret = "ddm.attr.secret"
)

// Renderer implements render.Renderer for terminal sessions. It prompts for
// every field of the form and serializes the answers.
type Renderer struct {
	driver            PromptDriver
	out               io.Writer
	outputFormat      OutputFormat
	submitTransformer SubmitTransformer
	theme             Theme
	review            bool
	logger            *zap.Logger
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (render.Renderer, error) {
	r := &Renderer{
		outputFormat: OutputFormatJSON,
		logger:       zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver(r.out)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	case OutputFormatYAML:
		return "application/yaml"
	default:
		return "application/json"
	}
}

// Render prompts for each field, seeding answers from opts.Values and field
// defaults, and returns the collected values in the configured format.
func (r *Renderer) Render(ctx context.Context, form model.FormModel, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	render.ApplySubset(&form, opts.Subset)
	if opts.Locale == "" {
		opts.Locale = form.Locale
	}
	mapping := render.MapErrorPayload(form, opts.Errors)

	s := &session{
		Renderer: r,
		opts:     opts,
		state:    NewState(opts.Values, mapping.Fields),
		rules:    make(map[string]rules),
	}

	if title := formTitle(form); title != "" {
		if err := s.info(ctx, render.Text(opts, "tui.intro", fmt.Sprintf("Fill in %s", title), title)); err != nil {
			return nil, err
		}
	}
	for _, msg := range mapping.Form {
		if err := s.info(ctx, r.theme.ErrorPrefix+msg); err != nil {
			return nil, err
		}
	}

	if err := s.fields(ctx, form.Fields, ""); err != nil {
		return nil, err
	}

	values := s.state.Values()
	if r.submitTransformer != nil {
		var err error
		values, err = r.submitTransformer(values)
		if err != nil {
			return nil, fmt.Errorf("tui: submit transformer: %w", err)
		}
	}

	if r.review {
		if err := s.confirm(ctx, values); err != nil {
			return nil, err
		}
	}

	r.logger.Debug("tui session complete",
		zap.String("form", form.ID),
		zap.Int("answers", len(values)),
	)
	return r.serialize(values)
}

type session struct {
	*Renderer
	opts  render.RenderOptions
	state *State
	rules map[string]rules
}

// fields prompts each field under prefix. Children of object fields nest
// below their parent; children of scalar fields are stored as siblings.
func (s *session) fields(ctx context.Context, fields []model.Field, prefix string) error {
	for _, field := range fields {
		path := joinPath(prefix, field.Name)
		if err := s.field(ctx, field, path); err != nil {
			return err
		}
		if field.Type != model.FieldTypeObject && len(field.Nested) > 0 {
			if err := s.fields(ctx, field.Nested, prefix); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *session) field(ctx context.Context, field model.Field, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if field.UIHints[model.UIHintDecorative] == "true" {
		return s.decorative(ctx, field)
	}

	for _, msg := range s.state.ErrorsFor(path) {
		if err := s.info(ctx, fmt.Sprintf("%s%s: %s", s.theme.ErrorPrefix, displayLabel(field), msg)); err != nil {
			return err
		}
	}

	current, hasCurrent := s.state.GetValue(path)
	if !hasCurrent && field.Default != nil {
		current, hasCurrent = field.Default, true
	}

	if field.ReadOnly {
		if hasCurrent {
			return s.state.SetValue(path, current)
		}
		return nil
	}

	if field.Metadata[model.MetadataRepeatable] == "true" {
		value, err := s.repeat(ctx, field, path, current)
		if err != nil {
			return err
		}
		return s.state.SetValue(path, value)
	}

	value, err := s.answer(ctx, field, path, current)
	if err != nil {
		return err
	}
	if value == nil {
		return nil
	}
	return s.state.SetValue(path, value)
}

// repeat collects one answer per instance of a repeatable field.
func (s *session) repeat(ctx context.Context, field model.Field, path string, current any) ([]any, error) {
	previous, _ := current.([]any)
	var items []any
	for idx := 0; ; idx++ {
		var seed any
		if idx < len(previous) {
			seed = previous[idx]
		} else if idx == 0 {
			seed = current
		}
		value, err := s.answer(ctx, field, fmt.Sprintf("%s.%d", path, idx), seed)
		if err != nil {
			return nil, err
		}
		if value != nil {
			items = append(items, value)
		}

		more, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: render.Text(s.opts, "form.repeat", "Add another"),
			Default: idx+1 < len(previous),
		})
		if err != nil {
			return nil, err
		}
		if !more {
			return items, nil
		}
	}
}

func (s *session) answer(ctx context.Context, field model.Field, path string, current any) (any, error) {
	switch {
	case field.Type == model.FieldTypeObject:
		return s.object(ctx, field, path, current)
	case field.Type == model.FieldTypeArray && len(field.Enum) > 0:
		return s.multiSelect(ctx, field, path, current)
	case len(field.Enum) > 0:
		return s.selectOne(ctx, field, path, current)
	case field.Type == model.FieldTypeBoolean:
		return s.boolean(ctx, field, current)
	default:
		return s.text(ctx, field, path, current)
	}
}

func (s *session) object(ctx context.Context, field model.Field, path string, current any) (any, error) {
	values, _ := current.(map[string]any)
	out := make(map[string]any, len(field.Nested))
	for _, child := range field.Nested {
		childPath := joinPath(path, child.Name)
		seed, ok := values[child.Name]
		if !ok {
			seed = child.Default
		}
		value, err := s.answer(ctx, child, childPath, seed)
		if err != nil {
			return nil, err
		}
		if value != nil {
			out[child.Name] = value
		}
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

func (s *session) boolean(ctx context.Context, field model.Field, current any) (any, error) {
	def, _ := current.(bool)
	if raw, ok := current.(string); ok {
		def = strings.EqualFold(strings.TrimSpace(raw), "true")
	}
	return s.driver.Confirm(ctx, ConfirmConfig{
		Message: displayLabel(field),
		Default: def,
		Help:    displayHelp(field),
	})
}

func (s *session) selectOne(ctx context.Context, field model.Field, path string, current any) (any, error) {
	r := rulesFor(field, s.rules, path)
	values := stringify(field.Enum)
	labels := optionLabels(field)
	defaultIdx := -1
	if current != nil {
		defaultIdx = indexOf(values, fmt.Sprint(firstValue(current)))
	}

	for {
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      displayLabel(field),
			Options:      labels,
			DefaultIndex: defaultIdx,
			Help:         displayHelp(field),
		})
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(values) {
			if err := s.invalid(ctx, field, errors.New("no option selected")); err != nil {
				return nil, err
			}
			continue
		}
		if err := r.selection([]string{values[idx]}); err != nil {
			if err := s.invalid(ctx, field, err); err != nil {
				return nil, err
			}
			continue
		}
		return values[idx], nil
	}
}

func (s *session) multiSelect(ctx context.Context, field model.Field, path string, current any) (any, error) {
	r := rulesFor(field, s.rules, path)
	values := stringify(field.Enum)
	defaults := indicesOf(values, stringify(asSlice(current)))

	for {
		indices, err := s.driver.MultiSelect(ctx, SelectConfig{
			Message:  displayLabel(field),
			Options:  optionLabels(field),
			Defaults: defaults,
			Help:     displayHelp(field),
		})
		if err != nil {
			return nil, err
		}
		selected := valuesAt(values, indices)
		if err := r.selection(selected); err != nil {
			if err := s.invalid(ctx, field, err); err != nil {
				return nil, err
			}
			continue
		}
		if len(selected) == 0 {
			return nil, nil
		}
		out := make([]any, len(selected))
		for i, v := range selected {
			out[i] = v
		}
		return out, nil
	}
}

func (s *session) text(ctx context.Context, field model.Field, path string, current any) (any, error) {
	r := rulesFor(field, s.rules, path)
	validator := func(raw string) error {
		_, err := r.text(raw)
		return err
	}

	def := ""
	if current != nil {
		def = fmt.Sprint(current)
	}

	for {
		var (
			raw string
			err error
		)
		switch {
		case field.Metadata[metadataSecret] == "true":
			raw, err = s.driver.Password(ctx, InputConfig{
				Message:   displayLabel(field),
				Help:      displayHelp(field),
				Validator: validator,
			})
		case isMultiline(field):
			raw, err = s.driver.TextArea(ctx, TextAreaConfig{
				Message: displayLabel(field),
				Default: def,
				Help:    displayHelp(field),
			})
		default:
			raw, err = s.driver.Input(ctx, InputConfig{
				Message:     displayLabel(field),
				Default:     def,
				Help:        displayHelp(field),
				Placeholder: field.Placeholder,
				Validator:   validator,
			})
		}
		if err != nil {
			return nil, err
		}

		value, err := r.text(raw)
		if err != nil {
			if err := s.invalid(ctx, field, err); err != nil {
				return nil, err
			}
			continue
		}
		if t, ok := value.(time.Time); ok {
			return t.Format(dateLayout), nil
		}
		return value, nil
	}
}

// decorative prints paragraph text; separators print nothing.
func (s *session) decorative(ctx context.Context, field model.Field) error {
	text := field.Metadata["ddm.attr.text"]
	if text == "" {
		text = field.Description
	}
	if text == "" {
		return nil
	}
	return s.info(ctx, plainText(text))
}

func (s *session) invalid(ctx context.Context, field model.Field, cause error) error {
	msg := render.Text(s.opts, "form.errors.invalid", "Enter a valid value")
	if isRequiredErr(cause) {
		msg = render.Text(s.opts, "form.errors.required", "This field is required")
	}
	s.logger.Debug("tui answer rejected", zap.String("field", field.Name), zap.Error(cause))
	return s.info(ctx, fmt.Sprintf("%s%s: %s", s.theme.ErrorPrefix, displayLabel(field), msg))
}

func (s *session) confirm(ctx context.Context, values map[string]any) error {
	if err := s.info(ctx, render.Text(s.opts, "tui.review", "Review your answers")); err != nil {
		return err
	}
	if err := s.info(ctx, strings.TrimRight(prettyAnswers(values), "\n")); err != nil {
		return err
	}
	ok, err := s.driver.Confirm(ctx, ConfirmConfig{
		Message: render.Text(s.opts, "tui.confirm", "Submit these values?"),
		Default: true,
	})
	if err != nil {
		return err
	}
	if !ok {
		return ErrDeclined
	}
	return nil
}

func (s *session) info(ctx context.Context, msg string) error {
	return s.driver.Info(ctx, s.theme.InfoPrefix+msg)
}

func formTitle(form model.FormModel) string {
	if form.Title != "" {
		return form.Title
	}
	return form.ID
}

func displayLabel(field model.Field) string {
	if field.Label != "" {
		return field.Label
	}
	return field.Name
}

func displayHelp(field model.Field) string {
	if h := field.UIHints[model.UIHintHelpText]; h != "" {
		return h
	}
	return field.Description
}

func isMultiline(field model.Field) bool {
	switch field.UIHints[model.UIHintWidget] {
	case "textarea", "text-html":
		return true
	}
	return field.Format == "html"
}

func optionLabels(field model.Field) []string {
	out := make([]string, len(field.Enum))
	for i, v := range field.Enum {
		if i < len(field.EnumLabels) && field.EnumLabels[i] != "" {
			out[i] = field.EnumLabels[i]
			continue
		}
		out[i] = fmt.Sprint(v)
	}
	return out
}

func stringify(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, fmt.Sprint(v))
	}
	return out
}

func asSlice(value any) []any {
	switch v := value.(type) {
	case nil:
		return nil
	case []any:
		return v
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	default:
		return []any{v}
	}
}

func firstValue(value any) any {
	if items := asSlice(value); len(items) > 0 {
		return items[0]
	}
	return value
}

func joinPath(parent, child string) string {
	if parent == "" {
		return child
	}
	return parent + "." + child
}

func indexOf(options []string, value string) int {
	return slices.Index(options, value)
}

// indicesOf returns the positions of options that appear in values.
func indicesOf(options, values []string) []int {
	var out []int
	for i, option := range options {
		if slices.Contains(values, option) {
			out = append(out, i)
		}
	}
	return out
}

func valuesAt(options []string, indices []int) []string {
	out := make([]string, 0, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(options) {
			out = append(out, options[idx])
		}
	}
	return out
}
