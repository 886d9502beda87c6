package render

import (
	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// title capitalises a label such as a severity
func title(s string) string {
	return titleCaser.String(s)
}

// mark renders a set/unset flag
func mark(set bool) string {
	if set {
		return color.New(color.FgGreen).Sprint("set")
	}
	return color.New(color.FgYellow).Sprint("unset")
}
