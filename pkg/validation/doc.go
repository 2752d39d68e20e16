// Package validation checks form submissions against the form model. The
// model is compiled into an OpenAPI schema (kin-openapi) that enforces types,
// required fields, option lists and bounds; DDM specific value rules such as
// the accepted date layouts run through ddm.Field.Validate.
package validation
