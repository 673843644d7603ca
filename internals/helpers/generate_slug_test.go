package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Igreja Batista Central", "igreja-batista-central"},
		{"  Comunidade  da  Graça  ", "comunidade-da-graça"},
		{"Célula Norte #3", "célula-norte-3"},
		{"UPPER CASE", "upper-case"},
		{"---", ""},
		{"", ""},
		{"a__b..c", "a-b-c"},
		{"já-com-hifen", "já-com-hifen"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GenerateSlug(tc.in), "input %q", tc.in)
	}
}

func TestCutToLen(t *testing.T) {
	assert.Equal(t, "abc", cutToLen("abc", 10))
	assert.Equal(t, "ab", cutToLen("abcd", 2))
	// corte não pode deixar hífen pendurado
	assert.Equal(t, "ab", cutToLen("ab-cd", 3))
	assert.Equal(t, "abc", cutToLen("abc", 0))
}
