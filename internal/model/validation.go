package model

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-ddmform/pkg/ddm"
)

var errStructureEmpty = errors.New("model builder: structure has no fields")

func validateStructure(structure ddm.Structure) error {
	if len(structure.Fields) == 0 {
		return errStructureEmpty
	}
	if err := validateFields("", structure.Fields); err != nil {
		return fmt.Errorf("model builder: invalid structure: %w", err)
	}
	return nil
}

func validateFields(parent string, fields []ddm.Field) error {
	seen := make(map[string]struct{}, len(fields))
	for i, field := range fields {
		if field.Name == "" {
			if parent == "" {
				return fmt.Errorf("field %d has no name", i)
			}
			return fmt.Errorf("field %d of %s has no name", i, parent)
		}
		if _, dup := seen[field.Name]; dup {
			return fmt.Errorf("duplicate field name %q", field.Name)
		}
		seen[field.Name] = struct{}{}
		if err := validateFields(field.Name, field.Fields); err != nil {
			return err
		}
	}
	return nil
}
