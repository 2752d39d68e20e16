// Package i18n loads YAML translation catalogs and resolves messages for a
// locale. Catalog files are named after the locale they serve ("es_ES.yaml")
// and may nest keys; nested keys are flattened with dots so
//
//	form:
//	  submit: Enviar
//
// is looked up as "form.submit". The package ships English and Spanish
// defaults through Default.
package i18n
