package graph

import (
	"strings"

	"coursegraph/lib/htmlutil"
)

// IDSeparator replaces whitespace inside course identifiers.
const IDSeparator = "_"

// NormalizeID turns the text of a course reference like "CS  2500" into its
// canonical identifier "CS_2500". It returns an empty string for blank text.
func NormalizeID(text string) string {
	fields := strings.Fields(htmlutil.NormalizeText(text))
	return strings.ToUpper(strings.Join(fields, IDSeparator))
}

// CanonicalID builds the identifier of a course from its subject and number.
func CanonicalID(subject, number string) string {
	return NormalizeID(subject + " " + number)
}

// CourseLabel is the label of a listed course, the identifier and the title
// on separate lines.
func CourseLabel(id, title string) string {
	title = htmlutil.NormalizeText(title)
	if title == "" {
		return id
	}
	return id + "\n" + title
}
