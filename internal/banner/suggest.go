package banner

import (
	"fmt"
	"slices"
	"strings"

	"github.com/antzucaro/matchr"
)

const (
	suggestionThreshold = 0.8
	maxSuggestions      = 3
)

type suggestion struct {
	option     Option
	similarity float64
}

// suggest returns up to maxSuggestions options that look like `value`, by the
// Jaro-Winkler similarity of either their code or their label.
func suggest(options *OptionSet, value string) []string {
	if options == nil {
		return nil
	}
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return nil
	}

	var candidates []suggestion
	for _, opt := range options.options {
		similarity := max(
			matchr.JaroWinkler(value, strings.ToLower(opt.Code), false),
			matchr.JaroWinkler(value, strings.ToLower(opt.Label), false),
		)
		if similarity < suggestionThreshold {
			continue
		}
		candidates = append(candidates, suggestion{option: opt, similarity: similarity})
	}

	// stable so ties keep document order
	slices.SortStableFunc(candidates, func(a, b suggestion) int {
		switch {
		case a.similarity > b.similarity:
			return -1
		case a.similarity < b.similarity:
			return 1
		}
		return 0
	})

	var out []string
	for i := 0; i < len(candidates) && i < maxSuggestions; i++ {
		opt := candidates[i].option
		if opt.Label == "" || opt.Label == opt.Code {
			out = append(out, opt.Code)
			continue
		}
		out = append(out, fmt.Sprintf("%s (%s)", opt.Code, opt.Label))
	}
	return out
}
