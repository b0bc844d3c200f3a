package vec

// Option configures a Vec at attach time.
type Option func(*options)

type options struct {
	clearCapacity int
}

// WithClearCapacity makes Clear retain room for n records instead of
// truncating the storage to the bare header. A vector that is cleared and
// refilled in cycles avoids regrowing through the small capacities on every
// cycle.
func WithClearCapacity(n int) Option {
	return func(o *options) {
		o.clearCapacity = n
	}
}
