package vcs

import "github.com/sahilm/fuzzy"

// maxSuggestions bounds how many near-miss names an error message lists.
const maxSuggestions = 3

// Suggest returns up to three candidates that fuzzy-match name, best first.
// An exact match is never suggested.
func Suggest(name string, candidates []string) []string {
	if name == "" || len(candidates) == 0 {
		return nil
	}
	var out []string
	for _, m := range fuzzy.Find(name, candidates) {
		if m.Str == name {
			continue
		}
		out = append(out, m.Str)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
