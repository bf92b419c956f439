// options.go — Problem construction options and counting options.

package match

// Option configures NewProblem.
type Option func(*config)

type config struct {
	seed      *Bitmat
	identity  bool
	threshold float64
	verbose   bool
}

func defaultConfig() config {
	return config{threshold: 0}
}

// WithCandidates seeds the candidate matrix instead of the all-true
// default. The matrix is copied and must be template nodes by world nodes
// (ErrCandidateShape).
func WithCandidates(b *Bitmat) Option {
	return func(c *config) { c.seed = b }
}

// WithIdentityCandidates seeds each template node with exactly the world
// nodes sharing its identity, useful when both graphs draw node names from
// one namespace. Names without a counterpart get an empty row.
func WithIdentityCandidates() Option {
	return func(c *config) { c.identity = true }
}

// WithCostThreshold sets the assignment filter's tolerance: candidates
// whose forced-pair assignment cost exceeds th are cleared. The default 0
// keeps only candidates compatible with a zero-deficit global assignment.
func WithCostThreshold(th float64) Option {
	return func(c *config) { c.threshold = th }
}

// WithVerbose enables progress logging through klog.
func WithVerbose(v bool) Option {
	return func(c *config) { c.verbose = v }
}

// CountOptions governs CountIsomorphisms.
type CountOptions struct {
	// UseEquivalence counts interchangeable template nodes as groups
	// instead of enumerating their orderings.
	UseEquivalence bool

	// Workers bounds the goroutines fanned out over the first cover node's
	// candidates. Values below 1 mean serial.
	Workers int

	// Verbose enables progress logging for this call even when the Problem
	// was built without WithVerbose.
	Verbose bool
}

// DefaultCountOptions returns the serial, exact-enumeration defaults.
func DefaultCountOptions() CountOptions {
	return CountOptions{UseEquivalence: false, Workers: 1, Verbose: false}
}
