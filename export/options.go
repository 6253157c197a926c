package export

type exportOpts struct {
	indent int
}

type Option func(*exportOpts)

// Indent sets the number of spaces per nesting level for formats that
// support pretty printing. JSON is compact unless Indent is given.
func Indent(n int) Option {
	return func(o *exportOpts) { o.indent = n }
}

func newOpts(opts []Option) *exportOpts {
	o := &exportOpts{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
