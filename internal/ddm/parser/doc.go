// Package parser decodes Liferay DDM XSD definitions
// (<root available-locales default-locale><dynamic-element ...>) into
// ddm.Structure values. The decoder works on tokens so malformed markup,
// stray text around the root, and empty roots are told apart before any
// field is built.
package parser
