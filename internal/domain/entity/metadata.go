package entity

// PageMeta is the social-preview metadata extracted from a remote page.
// ImageURL and Description may be empty; absence of a preview tag is not an
// error.
type PageMeta struct {
	Title       string
	URL         string
	ImageURL    string
	Description string
}
