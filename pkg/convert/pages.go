package convert

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Selection is the set of 0-based page indices chosen for conversion.
// A nil Selection selects every page.
type Selection map[int]struct{}

// All reports whether the selection covers every page.
func (s Selection) All() bool {
	return s == nil
}

// Contains reports whether the 0-based page index is selected.
func (s Selection) Contains(index int) bool {
	if s == nil {
		return true
	}
	_, ok := s[index]
	return ok
}

// ValidatePages checks the requested 1-based page numbers against the
// document's total page count and converts them to a 0-based Selection.
//
// An empty request selects all pages. Invalid numbers (0, negative, or
// beyond total) are all collected before failing, so the error message
// names every offending value, deduplicated and sorted, together with
// the valid range. Duplicates in a valid request collapse naturally.
func ValidatePages(requested []int, total int) (Selection, error) {
	if len(requested) == 0 {
		return nil, nil
	}

	seen := make(map[int]struct{})
	var problematic []int
	for _, p := range requested {
		if p >= 1 && p <= total {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		problematic = append(problematic, p)
	}

	if len(problematic) > 0 {
		sort.Ints(problematic)
		list := make([]string, len(problematic))
		for i, p := range problematic {
			list[i] = strconv.Itoa(p)
		}
		msg := fmt.Sprintf("Invalid requested page(s): %s. The page numbers must be between 1 and %d.",
			strings.Join(list, ", "), total)
		return nil, &Error{Kind: ErrPageValidation, Message: msg}
	}

	selection := make(Selection, len(requested))
	for _, p := range requested {
		selection[p-1] = struct{}{}
	}
	return selection, nil
}
