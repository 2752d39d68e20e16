package model_test

import (
	"errors"
	"testing"

	pkgmodel "github.com/goliatone/go-ddmform/pkg/model"
)

func TestDecoratorFunc(t *testing.T) {
	var decorator pkgmodel.Decorator = pkgmodel.DecoratorFunc(func(form *pkgmodel.FormModel) error {
		form.Title = "Decorated"
		return nil
	})

	form := pkgmodel.FormModel{}
	if err := decorator.Decorate(&form); err != nil {
		t.Fatalf("decorate: %v", err)
	}
	if form.Title != "Decorated" {
		t.Fatalf("expected title to be set, got %q", form.Title)
	}

	failing := pkgmodel.DecoratorFunc(func(*pkgmodel.FormModel) error { return errors.New("boom") })
	if err := failing.Decorate(&form); err == nil {
		t.Fatalf("expected error")
	}
}
