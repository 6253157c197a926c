package encode

type ViewOption func(*viewState)

func ViewColors(c *Colors) ViewOption {
	return func(vs *viewState) { vs.Color = c.Color }
}

// ViewIndent sets the number of spaces per nesting level.
func ViewIndent(n int) ViewOption {
	return func(vs *viewState) { vs.indent = n }
}

// ViewTruncate elides byte strings longer than n bytes, showing only their
// length. Zero disables truncation.
func ViewTruncate(n int) ViewOption {
	return func(vs *viewState) { vs.truncate = n }
}

// ViewInline writes containers on a single line with comma separated
// elements.
func ViewInline() ViewOption {
	return func(vs *viewState) { vs.inline = true }
}
