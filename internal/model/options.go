package model

import "github.com/goliatone/go-ddmform/pkg/ddm"

// Options configures the behaviour of the Builder. Options are constructed by
// the public adapter in pkg/model and passed into New.
type Options struct {
	Labeler func(string) string
	// DateLayout formats date defaults. Defaults to the HTML date input layout.
	DateLayout string
}

const defaultDateLayout = "2006-01-02"

func defaultOptions() Options {
	return Options{
		Labeler:    ddm.DefaultLabeler,
		DateLayout: defaultDateLayout,
	}
}
