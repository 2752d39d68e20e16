// Package template defines the template engine seam renderers depend on. The
// gotemplate subpackage provides the default engine on go-template.
package template
