package components

// Widget names used by the vanilla renderer and the default registry. They
// match the "widget" UI hint the model builder derives from DDM editor types.
const (
	NameText            = "text"
	NameTextarea        = "textarea"
	NameSelect          = "select"
	NameRadio           = "radio"
	NameCheckbox        = "checkbox"
	NameDate            = "date"
	NameInteger         = "integer"
	NameNumber          = "number"
	NameDecimal         = "decimal"
	NameDocumentLibrary = "documentlibrary"
	NameGeolocation     = "geolocation"
	NameTextHTML        = "text-html"
	NameImage           = "image"
	NameLinkToPage      = "link-to-page"
	NameSeparator       = "separator"
	NameParagraph       = "paragraph"
	NameGroup           = "group"
)

// GeolocationScript is the asset the geolocation widget loads to fill its
// coordinates from the browser.
const GeolocationScript = "ddmform-geolocation.js"

// Chrome label keys components read from Control.Labels.
const (
	LabelSelectPlaceholder = "selectPlaceholder"
	LabelLocate            = "locate"
)
