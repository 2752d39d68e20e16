package model

import internalmodel "github.com/goliatone/go-ddmform/internal/model"

// FieldType re-exports the internal FieldType enumeration.
type FieldType = internalmodel.FieldType

const (
	FieldTypeString  = internalmodel.FieldTypeString
	FieldTypeInteger = internalmodel.FieldTypeInteger
	FieldTypeNumber  = internalmodel.FieldTypeNumber
	FieldTypeBoolean = internalmodel.FieldTypeBoolean
	FieldTypeArray   = internalmodel.FieldTypeArray
	FieldTypeObject  = internalmodel.FieldTypeObject
)

const (
	ValidationRuleMin       = internalmodel.ValidationRuleMin
	ValidationRuleMax       = internalmodel.ValidationRuleMax
	ValidationRuleMinLength = internalmodel.ValidationRuleMinLength
	ValidationRuleMaxLength = internalmodel.ValidationRuleMaxLength
	ValidationRulePattern   = internalmodel.ValidationRulePattern
)

// Metadata and UI hint keys written by the builder.
const (
	MetadataDataType   = internalmodel.MetadataDataType
	MetadataEditorType = internalmodel.MetadataEditorType
	MetadataRepeatable = internalmodel.MetadataRepeatable
	MetadataReadOnly   = internalmodel.MetadataReadOnly
	MetadataWidth      = internalmodel.MetadataWidth
	MetadataIndexType  = internalmodel.MetadataIndexType
	MetadataMultiple   = internalmodel.MetadataMultiple
	MetadataLocale     = internalmodel.MetadataLocale
	MetadataLocales    = internalmodel.MetadataLocales

	UIHintWidget      = internalmodel.UIHintWidget
	UIHintHideLabel   = internalmodel.UIHintHideLabel
	UIHintHelpText    = internalmodel.UIHintHelpText
	UIHintDecorative  = internalmodel.UIHintDecorative
	UIHintPlaceholder = internalmodel.UIHintPlaceholder
)

type ValidationRule = internalmodel.ValidationRule
type Field = internalmodel.Field
type FormModel = internalmodel.FormModel
