package networks

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

const maxSuggestions = 3

// NameEntry is one name a chain can be selected by.
type NameEntry struct {
	Name  string
	Chain Chain
}

// FuzzySource lists every name and alternative name of the supported chains
// for fuzzy.FindFrom.
type FuzzySource []NameEntry

func (self FuzzySource) Len() int {
	return len(self)
}

func (self FuzzySource) String(i int) string {
	return self[i].Name
}

func NewFuzzySource() FuzzySource {
	result := FuzzySource{}
	for _, c := range GetSupportedChains() {
		result = append(result, NameEntry{Name: c.GetName(), Chain: c})
		for _, alt := range c.GetAlternativeNames() {
			result = append(result, NameEntry{Name: alt, Chain: c})
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// Suggest returns the supported names closest to a mistyped network name,
// best match first.
func Suggest(name string) []string {
	input := strings.ToLower(strings.TrimSpace(name))
	if input == "" {
		return nil
	}
	source := NewFuzzySource()
	matches := fuzzy.FindFrom(input, source)
	result := []string{}
	for i := 0; i < len(matches) && i < maxSuggestions; i++ {
		result = append(result, source[matches[i].Index].Name)
	}
	return result
}
