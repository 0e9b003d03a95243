package pwz

// Option configures a derivation.
type Option func(*options)

type options struct {
	vertical   bool
	horizontal bool
	cycleLimit int
}

func defaultOptions() *options {
	return &options{
		vertical:   true,
		horizontal: true,
	}
}

func makeOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// VerticalCompaction toggles collapsing of unlabeled single-child wrappers
// in result trees. Default is on.
func VerticalCompaction(b bool) Option {
	return func(o *options) {
		o.vertical = b
	}
}

// HorizontalCompaction toggles removal of content-free siblings (completed
// expressions without label, value or children) in result trees. Default is on.
func HorizontalCompaction(b bool) Option {
	return func(o *options) {
		o.horizontal = b
	}
}

// CycleLimit makes a derivation fail with ErrCycleLimit after n steps.
// n ≤ 0 means no limit, which is the default.
func CycleLimit(n int) Option {
	return func(o *options) {
		o.cycleLimit = n
	}
}
