package entity

import "strings"

// Category is a catalog entry for a category value seen on a source or page.
// Categories form a slash-delimited hierarchy: "news" is an ancestor of
// "news/tech". Deleting a category is a pure catalog deletion and does not
// cascade to sources or pages that still reference the name.
type Category struct {
	Name string
}

// CategoryMatchesPrefix reports whether name equals prefix or is a descendant
// of it in the slash hierarchy. "news/tech" matches prefix "news" but not
// "newsletter".
func CategoryMatchesPrefix(name, prefix string) bool {
	if name == prefix {
		return true
	}
	return strings.HasPrefix(name, prefix+"/")
}
