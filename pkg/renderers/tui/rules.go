package tui

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-ddmform/pkg/ddm"
	"github.com/goliatone/go-ddmform/pkg/model"
)

// rules combines the DDM definition checks with the model validations the
// builder attached to a field.
type rules struct {
	def     ddm.Field
	min     *float64
	max     *float64
	minLen  *int
	maxLen  *int
	pattern *regexp.Regexp
}

func rulesFor(field model.Field, cache map[string]rules, path string) rules {
	if cached, ok := cache[path]; ok {
		return cached
	}
	r := rules{def: model.Definition(field)}
	for _, v := range field.Validations {
		switch v.Kind {
		case model.ValidationRuleMin:
			if val, err := strconv.ParseFloat(v.Params["value"], 64); err == nil {
				r.min = &val
			}
		case model.ValidationRuleMax:
			if val, err := strconv.ParseFloat(v.Params["value"], 64); err == nil {
				r.max = &val
			}
		case model.ValidationRuleMinLength:
			if val, err := strconv.Atoi(v.Params["value"]); err == nil {
				r.minLen = &val
			}
		case model.ValidationRuleMaxLength:
			if val, err := strconv.Atoi(v.Params["value"]); err == nil {
				r.maxLen = &val
			}
		case model.ValidationRulePattern:
			if expr := v.Params["pattern"]; expr != "" {
				if re, err := regexp.Compile(expr); err == nil {
					r.pattern = re
				}
			}
		}
	}
	cache[path] = r
	return r
}

// text validates a raw answer and converts it to the field's value type.
// Empty optional answers convert to nil.
func (r rules) text(raw string) (any, error) {
	if err := r.def.Validate(raw); err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	if r.minLen != nil && len(trimmed) < *r.minLen {
		return nil, fmt.Errorf("%w: at least %d characters", ddm.ErrInvalidValue, *r.minLen)
	}
	if r.maxLen != nil && len(trimmed) > *r.maxLen {
		return nil, fmt.Errorf("%w: at most %d characters", ddm.ErrInvalidValue, *r.maxLen)
	}
	if r.pattern != nil && !r.pattern.MatchString(trimmed) {
		return nil, fmt.Errorf("%w: does not match %s", ddm.ErrInvalidValue, r.pattern)
	}
	value, err := r.def.Convert(trimmed)
	if err != nil {
		return nil, err
	}
	return r.bounds(value)
}

func (r rules) bounds(value any) (any, error) {
	var n float64
	switch v := value.(type) {
	case int64:
		n = float64(v)
	case float64:
		n = v
	default:
		return value, nil
	}
	if r.min != nil && n < *r.min {
		return nil, fmt.Errorf("%w: minimum %v", ddm.ErrInvalidValue, *r.min)
	}
	if r.max != nil && n > *r.max {
		return nil, fmt.Errorf("%w: maximum %v", ddm.ErrInvalidValue, *r.max)
	}
	return value, nil
}

// selection validates chosen option values.
func (r rules) selection(values []string) error {
	items := make([]any, len(values))
	for i, v := range values {
		items[i] = v
	}
	return r.def.Validate(items)
}

func isRequiredErr(err error) bool {
	return errors.Is(err, ddm.ErrRequired)
}
