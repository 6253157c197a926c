package parse

type parseOpts struct {
	maxDepth   int
	strict     bool
	noTrailing bool
}

type ParseOption func(*parseOpts)

// MaxDepth bounds container nesting to n levels. Zero or less means no
// bound.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// Strict rejects leading zeros in integers and string lengths.
func Strict() ParseOption {
	return func(o *parseOpts) { o.strict = true }
}

// NoTrailing rejects input with bytes after the top-level value.
func NoTrailing() ParseOption {
	return func(o *parseOpts) { o.noTrailing = true }
}

func newOpts(opts []ParseOption) *parseOpts {
	res := &parseOpts{}
	for _, f := range opts {
		f(res)
	}
	return res
}
