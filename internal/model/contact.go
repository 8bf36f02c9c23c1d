package model

import (
	"sort"
	"strings"
	"time"
)

// Tag is a short categorical label attached to a contact
type Tag string

// String returns the tag label
func (t Tag) String() string {
	return string(t)
}

// Frequency is how often a client pays
type Frequency string

// Known payment frequencies
const (
	FrequencyNone       Frequency = "none"
	FrequencyMonthly    Frequency = "monthly"
	FrequencyQuarterly  Frequency = "quarterly"
	FrequencyHalfYearly Frequency = "half-yearly"
	FrequencyYearly     Frequency = "yearly"
)

// Frequencies lists the accepted payment frequencies in display order
var Frequencies = []Frequency{
	FrequencyNone,
	FrequencyMonthly,
	FrequencyQuarterly,
	FrequencyHalfYearly,
	FrequencyYearly,
}

// ParseFrequency maps user or database text to a Frequency.
// Unknown values map to FrequencyNone.
func ParseFrequency(s string) Frequency {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, f := range Frequencies {
		if string(f) == s {
			return f
		}
	}
	return FrequencyNone
}

// Contact is a client record. Contacts are values: consumers receive copies
// and never modify the Tags slice they are handed.
type Contact struct {
	ID         int
	Name       string
	Phone      string
	Email      string
	Address    string
	Birthday   time.Time // zero when unknown
	HasPaid    bool
	Frequency  Frequency
	ProfilePic string // path to the profile picture, may be empty
	Tags       []Tag
}

// Age returns the contact's age in whole years at now, and false if the
// birthday is unknown or lies in the future.
func (c Contact) Age(now time.Time) (int, bool) {
	if c.Birthday.IsZero() || c.Birthday.After(now) {
		return 0, false
	}

	years := now.Year() - c.Birthday.Year()
	if now.Month() < c.Birthday.Month() ||
		(now.Month() == c.Birthday.Month() && now.Day() < c.Birthday.Day()) {
		years--
	}
	return years, true
}

// SortedTags returns a copy of the tags in ascending label order
func (c Contact) SortedTags() []Tag {
	sorted := make([]Tag, len(c.Tags))
	copy(sorted, c.Tags)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	return sorted
}

// HasTag reports whether the contact carries label, ignoring case
func (c Contact) HasTag(label string) bool {
	for _, t := range c.Tags {
		if strings.EqualFold(string(t), label) {
			return true
		}
	}
	return false
}
