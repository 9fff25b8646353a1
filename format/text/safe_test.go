package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeText(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      string
	}{
		{description: "empty", input: "", expect: ""},
		{description: "plain", input: "abc", expect: "abc"},
		{description: "separator", input: "a,b", expect: `"a,b"`},
		{description: "quote", input: `say "hi"`, expect: `"say ""hi"""`},
		{description: "new line", input: "a\nb", expect: "\"a\nb\""},
	}
	for _, testCase := range testCases {
		assert.EqualValues(t, testCase.expect, SafeText(testCase.input), testCase.description)
	}
}

func TestQuoter(t *testing.T) {
	quote := Quoter(";")
	assert.EqualValues(t, "a,b", quote("a,b"))
	assert.EqualValues(t, `"a;b"`, quote("a;b"))
	assert.EqualValues(t, "a;b", Identity("a;b"))
}
