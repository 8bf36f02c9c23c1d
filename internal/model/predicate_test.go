package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func aliceTan() Contact {
	return Contact{
		Name:    "Alice Tan",
		Phone:   "94351253",
		Email:   "alice@example.com",
		Address: "123 Jurong West Ave 6",
		Tags:    []Tag{"friends", "highNetworth"},
	}
}

func TestKeywordPredicate_Test(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		contact  Contact
		want     bool
	}{
		{"no keywords", nil, aliceTan(), false},
		{"empty list", []string{}, aliceTan(), false},
		{"name word", []string{"Alice"}, aliceTan(), true},
		{"name upper case", []string{"ALICE"}, aliceTan(), true},
		{"name lower case", []string{"alice"}, aliceTan(), true},
		{"partial name", []string{"Ali"}, aliceTan(), false},
		{"phone", []string{"94351253"}, aliceTan(), true},
		{"partial phone", []string{"9435"}, aliceTan(), false},
		{"email", []string{"alice@EXAMPLE.com"}, aliceTan(), true},
		{"address word", []string{"jurong"}, aliceTan(), true},
		{"tag", []string{"HIGHNETWORTH"}, aliceTan(), true},
		{"one of many", []string{"Bob", "Carol", "friends"}, aliceTan(), true},
		{"none of many", []string{"Bob", "Carol"}, aliceTan(), false},
		{"no tags", []string{"friends"}, Contact{Name: "Bob Lee"}, false},
		{"blank keyword", []string{"  "}, aliceTan(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewKeywordPredicate(tt.keywords)
			assert.Equal(t, tt.want, p.Test(tt.contact))
		})
	}
}

func TestKeywordPredicate_CaseInsensitiveEquivalence(t *testing.T) {
	c := aliceTan()
	upper := NewKeywordPredicate([]string{"ALICE"})
	lower := NewKeywordPredicate([]string{"alice"})
	assert.Equal(t, lower.Test(c), upper.Test(c))
}

func TestKeywordPredicate_Equal(t *testing.T) {
	first := NewKeywordPredicate([]string{"first"})
	firstSecond := NewKeywordPredicate([]string{"first", "second"})

	assert.True(t, first.Equal(first))
	assert.True(t, first.Equal(NewKeywordPredicate([]string{"first"})))
	assert.True(t, firstSecond.Equal(NewKeywordPredicate([]string{"first", "second"})))
	assert.False(t, first.Equal(firstSecond))
	assert.False(t, firstSecond.Equal(NewKeywordPredicate([]string{"second", "first"})))
	assert.False(t, first.Equal(NewKeywordPredicate([]string{"FIRST"})))
	assert.True(t, NewKeywordPredicate(nil).Equal(NewKeywordPredicate([]string{})))
}

func TestKeywordPredicate_CopiesInput(t *testing.T) {
	keywords := []string{"alice"}
	p := NewKeywordPredicate(keywords)
	keywords[0] = "bob"

	assert.Equal(t, []string{"alice"}, p.Keywords())
	assert.True(t, p.Test(aliceTan()))
}

func TestKeywordPredicate_Filter(t *testing.T) {
	bob := Contact{Name: "Bob Lee", Tags: []Tag{"lowNetworth"}}
	carol := Contact{Name: "Carol Alice Ng"}
	contacts := []Contact{aliceTan(), bob, carol}

	got := ParseKeywords("  alice  ").Filter(contacts)
	names := make([]string, 0, len(got))
	for _, c := range got {
		names = append(names, c.Name)
	}

	if diff := cmp.Diff([]string{"Alice Tan", "Carol Alice Ng"}, names); diff != "" {
		t.Errorf("filtered names mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, ParseKeywords("").Filter(contacts))
}

func TestKeywordPredicate_String(t *testing.T) {
	p := NewKeywordPredicate([]string{"alice", "bob"})
	assert.Equal(t, "KeywordPredicate{keywords=[alice, bob]}", p.String())
}
