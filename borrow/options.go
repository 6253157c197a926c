package borrow

type borrowOpts struct {
	maxDepth int
	strict   bool
}

type Option func(*borrowOpts)

// MaxDepth bounds container nesting to n levels. Zero or less means no
// bound.
func MaxDepth(n int) Option {
	return func(o *borrowOpts) { o.maxDepth = n }
}

// Strict rejects leading zeros in integers and string lengths.
func Strict() Option {
	return func(o *borrowOpts) { o.strict = true }
}

func newOpts(opts []Option) borrowOpts {
	res := &borrowOpts{}
	for _, f := range opts {
		f(res)
	}
	return *res
}
