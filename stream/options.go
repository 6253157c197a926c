package stream

// StreamOption configures Encoder/Decoder behavior.
type StreamOption func(*streamOpts)

type streamOpts struct {
	maxDepth    int
	strict      bool
	noTrailing  bool
	noOrderTest bool
}

// MaxDepth bounds container nesting to n levels when decoding or encoding.
// Zero or less means no bound.
func MaxDepth(n int) StreamOption {
	return func(opts *streamOpts) { opts.maxDepth = n }
}

// Strict rejects leading zeros in integers and string lengths.
func Strict() StreamOption {
	return func(opts *streamOpts) { opts.strict = true }
}

// NoTrailing rejects bytes after the first top-level value.
func NoTrailing() StreamOption {
	return func(opts *streamOpts) { opts.noTrailing = true }
}

// VerifyOrder controls whether the Encoder checks that dictionary keys
// arrive in ascending order. It is on by default.
func VerifyOrder(v bool) StreamOption {
	return func(opts *streamOpts) { opts.noOrderTest = !v }
}

func newOpts(opts []StreamOption) *streamOpts {
	res := &streamOpts{}
	for _, opt := range opts {
		opt(res)
	}
	return res
}
