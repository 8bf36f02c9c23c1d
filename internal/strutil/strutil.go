package strutil

import "strings"

// ContainsWordIgnoreCase reports whether sentence contains word as a whole
// whitespace-separated token, ignoring case.
//
//	ContainsWordIgnoreCase("ABc def", "abc") == true
//	ContainsWordIgnoreCase("ABc def", "DEF") == true
//	ContainsWordIgnoreCase("ABc def", "AB")  == false
//
// A blank word, or a word containing whitespace, never matches.
func ContainsWordIgnoreCase(sentence, word string) bool {
	word = strings.TrimSpace(word)
	if word == "" || len(strings.Fields(word)) != 1 {
		return false
	}

	for _, token := range strings.Fields(sentence) {
		if strings.EqualFold(token, word) {
			return true
		}
	}
	return false
}
