package mentions_test

import (
	"testing"

	"github.com/prismo-bot/prismo/internal/mentions"
	"github.com/prismo-bot/prismo/internal/scope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	for _, tt := range []struct {
		Name    string
		Message string
		Refs    []mentions.Reference
	}{
		{
			Name:    "qualified and bare",
			Message: "fix Disnake/disnake#123 and #456",
			Refs: []mentions.Reference{
				{Org: "Disnake", Repo: "disnake", Number: 123},
				{Number: 456},
			},
		},
		{
			Name:    "repo shorthand",
			Message: "see disnake#42 for details",
			Refs:    []mentions.Reference{{Repo: "disnake", Number: 42}},
		},
		{
			Name:    "dotted repo name",
			Message: "tracked in octo/spoon.js#7",
			Refs:    []mentions.Reference{{Org: "octo", Repo: "spoon.js", Number: 7}},
		},
		{
			Name:    "no references",
			Message: "nothing to see here",
			Refs:    nil,
		},
		{
			Name:    "number only when hash present",
			Message: "issue 123 is not a reference",
			Refs:    nil,
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Refs, mentions.Detect(tt.Message))
		})
	}
}

func TestDetectCapsMatches(t *testing.T) {
	message := "one#1 two#2 three#3 four#4 five#5 six#6 seven#7"
	refs := mentions.Detect(message)
	require.Len(t, refs, mentions.MaxPerMessage)
	// The first five references survive in order of appearance.
	for i, ref := range refs {
		assert.Equal(t, i+1, ref.Number)
	}
}

func TestDetectSkipsOverflowingNumbers(t *testing.T) {
	refs := mentions.Detect("see #99999999999999999999 and #5")
	assert.Equal(t, []mentions.Reference{{Number: 5}}, refs)
}

func TestQualify(t *testing.T) {
	defaultScope := scope.Scope{Owner: "Disnake", Repo: "disnake"}
	for _, tt := range []struct {
		Name string
		Ref  mentions.Reference
		Want mentions.Reference
	}{
		{
			Name: "bare number takes org and repo",
			Ref:  mentions.Reference{Number: 456},
			Want: mentions.Reference{Org: "Disnake", Repo: "disnake", Number: 456},
		},
		{
			Name: "repo shorthand takes org only",
			Ref:  mentions.Reference{Repo: "other", Number: 1},
			Want: mentions.Reference{Org: "Disnake", Repo: "other", Number: 1},
		},
		{
			Name: "qualified reference is unchanged",
			Ref:  mentions.Reference{Org: "octo", Repo: "spoon", Number: 2},
			Want: mentions.Reference{Org: "octo", Repo: "spoon", Number: 2},
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			got, err := tt.Ref.Qualify(defaultScope)
			require.NoError(t, err)
			assert.Equal(t, tt.Want, got)
		})
	}
}

func TestQualifyWithoutScope(t *testing.T) {
	_, err := mentions.Reference{Number: 456}.Qualify(scope.Scope{})
	require.ErrorIs(t, err, mentions.ErrNoDefaultScope)

	// A fully qualified reference never needs the default scope.
	ref := mentions.Reference{Org: "octo", Repo: "spoon", Number: 2}
	got, err := ref.Qualify(scope.Scope{})
	require.NoError(t, err)
	assert.Equal(t, ref, got)
}

func TestReferenceString(t *testing.T) {
	assert.Equal(t, "#456", mentions.Reference{Number: 456}.String())
	assert.Equal(t, "spoon#1", mentions.Reference{Repo: "spoon", Number: 1}.String())
	assert.Equal(t, "octo/spoon#1", mentions.Reference{Org: "octo", Repo: "spoon", Number: 1}.String())
}

func TestParseReference(t *testing.T) {
	for _, tt := range []struct {
		Arg string
		Ref mentions.Reference
		OK  bool
	}{
		{Arg: "123", Ref: mentions.Reference{Number: 123}, OK: true},
		{Arg: "#123", Ref: mentions.Reference{Number: 123}, OK: true},
		{Arg: "disnake#42", Ref: mentions.Reference{Repo: "disnake", Number: 42}, OK: true},
		{Arg: "octo/spoon#7", Ref: mentions.Reference{Org: "octo", Repo: "spoon", Number: 7}, OK: true},
		{Arg: "nope", OK: false},
		{Arg: "0", OK: false},
		{Arg: "see #5 please", OK: false},
	} {
		t.Run(tt.Arg, func(t *testing.T) {
			ref, ok := mentions.ParseReference(tt.Arg)
			require.Equal(t, tt.OK, ok)
			assert.Equal(t, tt.Ref, ref)
		})
	}
}
