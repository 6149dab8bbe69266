package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLeadingStringInBetweenSquareBrackets(t *testing.T) {
	bracket, rest := GetLeadingStringInBetweenSquareBrackets(`[200 OK] {"hits":[]}`)
	assert.Equal(t, "[200 OK]", bracket)
	assert.Equal(t, `{"hits":[]}`, rest)

	bracket, rest = GetLeadingStringInBetweenSquareBrackets(`{"hits":[]}`)
	assert.Empty(t, bracket)
	assert.Empty(t, rest)
}

func TestSplitCommaSeparated(t *testing.T) {
	assert.Equal(t, []string{"PI3K_C2", "Ras"}, SplitCommaSeparated(" PI3K_C2, ,Ras,"))
	assert.Nil(t, SplitCommaSeparated(""))
}

func TestReadTabDelimited(t *testing.T) {
	df, err := ReadTabDelimited(strings.NewReader("#comment\na\tb\n1\t\n2\tNA\n"))
	require.Nil(t, err)

	assert.Equal(t, []string{"a", "b"}, df.Names())
	assert.Equal(t, []string{"", "NA"}, df.Col("b").Records())
	assert.Equal(t, []string{"", ""}, ColumnOrEmpty(df, "missing"))
}
