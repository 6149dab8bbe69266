package utils

import "strings"

func StringInSlice(a string, list []string) bool {
	for _, b := range list {
		if b == a {
			return true
		}
	}
	return false
}

// SplitCommaSeparated splits a comma-separated parameter, trimming spaces
// and dropping empty items.
func SplitCommaSeparated(text string) []string {
	var items []string
	for _, item := range strings.Split(text, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

func GetLeadingStringInBetweenSquareBrackets(str string) (bracketString string, theRestString string) {
	var (
		start = "["
		end   = "]"
	)
	s := strings.Index(str, start)
	if s == -1 {
		return
	}

	// Assume that if the open bracket is not at index 0,
	// it's an open bracket for an array of some sort within the string rather
	// than a marker for a prepended status code (i.e. elasticsearch)
	if s != 0 {
		return
	}

	e := strings.Index(str[s:], end)
	if e == -1 {
		return
	}

	return strings.Trim(str[s:e+1], " "), strings.Trim(str[e+1:], " ")
}
