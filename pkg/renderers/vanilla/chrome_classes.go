package vanilla

// ChromeClass is a typed identifier for semantic chrome CSS classes.
type ChromeClass string

const (
	ClassForm    ChromeClass = "ddmform-form"
	ClassHeader  ChromeClass = "ddmform-header"
	ClassFields  ChromeClass = "ddmform-fields"
	ClassActions ChromeClass = "ddmform-actions"
	ClassErrors  ChromeClass = "ddmform-errors"
)

func chromeClasses() map[string]string {
	return map[string]string{
		"form":    string(ClassForm),
		"header":  string(ClassHeader),
		"fields":  string(ClassFields),
		"actions": string(ClassActions),
		"errors":  string(ClassErrors),
	}
}
