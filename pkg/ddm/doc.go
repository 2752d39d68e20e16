// Package ddm defines the Dynamic Data Mapping structure model: the fields a
// Liferay form definition declares, already localized for a single locale.
// Parsing lives in internal/ddm/parser and is reachable through the Parser
// contract declared here or the constructors in the root package.
package ddm
