package model

import (
	"fmt"
	"strings"

	"github.com/pdxmph/clientbook/internal/strutil"
)

// KeywordPredicate matches contacts whose name, phone, email, address or
// tags contain any of its keywords as a whole word, ignoring case.
type KeywordPredicate struct {
	keywords []string
}

// NewKeywordPredicate creates a predicate over a copy of keywords
func NewKeywordPredicate(keywords []string) KeywordPredicate {
	kw := make([]string, len(keywords))
	copy(kw, keywords)
	return KeywordPredicate{keywords: kw}
}

// ParseKeywords builds a predicate from free text, one keyword per
// whitespace-separated field.
func ParseKeywords(text string) KeywordPredicate {
	return NewKeywordPredicate(strings.Fields(text))
}

// Keywords returns a copy of the keyword list
func (p KeywordPredicate) Keywords() []string {
	kw := make([]string, len(p.keywords))
	copy(kw, p.keywords)
	return kw
}

// IsEmpty reports whether the predicate has no keywords
func (p KeywordPredicate) IsEmpty() bool {
	return len(p.keywords) == 0
}

// Test reports whether any keyword matches c
func (p KeywordPredicate) Test(c Contact) bool {
	for _, keyword := range p.keywords {
		if matchesContact(c, keyword) {
			return true
		}
	}
	return false
}

func matchesContact(c Contact, keyword string) bool {
	fields := []string{c.Name, c.Phone, c.Email, c.Address}
	for _, field := range fields {
		if strutil.ContainsWordIgnoreCase(field, keyword) {
			return true
		}
	}
	for _, tag := range c.Tags {
		if strutil.ContainsWordIgnoreCase(tag.String(), keyword) {
			return true
		}
	}
	return false
}

// Filter returns the contacts that satisfy the predicate, in input order
func (p KeywordPredicate) Filter(contacts []Contact) []Contact {
	var matched []Contact
	for _, c := range contacts {
		if p.Test(c) {
			matched = append(matched, c)
		}
	}
	return matched
}

// Equal reports whether both predicates hold the same keywords in the same order
func (p KeywordPredicate) Equal(other KeywordPredicate) bool {
	if len(p.keywords) != len(other.keywords) {
		return false
	}
	for i := range p.keywords {
		if p.keywords[i] != other.keywords[i] {
			return false
		}
	}
	return true
}

func (p KeywordPredicate) String() string {
	return fmt.Sprintf("KeywordPredicate{keywords=[%s]}", strings.Join(p.keywords, ", "))
}
