package domain

// Selection is the user's chosen subset of allowed values per categorical
// column. It is derived fresh from the request on every interaction.
//
// Categories is nil when the dataset has no category column; a non-nil
// empty set means "nothing selected" and filters every row out.
type Selection struct {
	Days       map[string]struct{}
	Categories map[string]struct{}
}

// NewSelection builds a Selection from value lists. A nil categories slice
// keeps the category filter inactive.
func NewSelection(days []string, categories []string) Selection {
	sel := Selection{Days: toSet(days)}
	if categories != nil {
		sel.Categories = toSet(categories)
	}
	return sel
}

// Matches reports whether a row passes the selection predicate.
func (s Selection) Matches(r Row) bool {
	if _, ok := s.Days[r.Day]; !ok {
		return false
	}
	if s.Categories == nil {
		return true
	}
	_, ok := s.Categories[r.Category]
	return ok
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
