package main

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseProfile(t *testing.T) {
	p, err := parseProfile([]byte(strings.Join([]string{
		"error_limit: 25",
		"cell_limit: 65536",
		`specials: ";"`,
		"priorities:",
		`  "+": 7`,
	}, "\n")))
	require.NoError(t, err)
	assert.Equal(t, 25, p.ErrorLimit)
	assert.Equal(t, 65536, p.CellLimit)
	assert.Equal(t, ";", p.Specials)
	assert.Equal(t, map[string]uint{"+": 7}, p.Priorities)
}

func Test_parseProfile_rejects(t *testing.T) {
	for _, tc := range []struct {
		name string
		yaml string
		want string
	}{
		{"priority out of range", "priorities: {x: 300}", "out of range"},
		{"unknown key", "wibble: 1", "wibble"},
		{"malformed", "{", "yaml"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseProfile([]byte(tc.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func Test_withProfile(t *testing.T) {
	en := newBareEngine(WithProfile(&Profile{
		ErrorLimit: 2,
		CellLimit:  4096,
		Specials:   ";",
	}))

	assert.Equal(t, 2, en.errLimit)
	assert.Equal(t, 4096, en.cellLimit)
	assert.Equal(t, classSpecial, en.ccodes[';'], "profile specials extend the lexer table")
	assert.Equal(t, classWord, en.ccodes['x'], "default classes survive")
}

func Test_withProfile_prioritiesReachCatalog(t *testing.T) {
	en := New(
		WithDiagnostics(io.Discard),
		WithProfile(&Profile{Priorities: map[string]uint{"+": 7}}),
	)

	i, ok := en.findWord("+")
	require.True(t, ok)
	assert.Equal(t, uint(7), en.asInd(en.at(dictStack, i+1)))
}

func Test_profileSpecialsLexing(t *testing.T) {
	en := newBareEngine(
		WithProfile(&Profile{Specials: ";"}),
		WithNamedInput("test", strings.NewReader("ab;cd")),
	)
	assert.Equal(t, []string{"ab", ";", "cd"}, scanAll(en))
}
