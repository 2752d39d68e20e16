// Package model defines the typed form model consumed by renderers. Builders
// reside in internal/model but return the types defined here. A DDM field
// keeps its origin in Metadata (ddm.dataType, ddm.editorType, ddm.width, ...)
// while UIHints carries renderer-facing directives such as widget, hideLabel,
// helpText, and decorative. Renderers rely on these hints to choose controls
// without re-reading the DDM definition.
package model
