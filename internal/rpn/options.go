package rpn

// Option configures an Interp under New.
type Option interface{ apply(in *Interp) }

// ExpansionMode selects what happens to a line's output when a word expands.
type ExpansionMode int

const (
	// ReplaceOutput discards any output the line produced before the word,
	// keeping only the output of the expansion.
	ReplaceOutput ExpansionMode = iota

	// AppendOutput adds the expansion's output after what the line has
	// printed so far.
	AppendOutput
)

func (mode ExpansionMode) String() string {
	switch mode {
	case ReplaceOutput:
		return "replace"
	case AppendOutput:
		return "append"
	default:
		return "invalid"
	}
}

const (
	defaultCapacity = 20
	defaultMaxDepth = 1024
)

var defaults = []Option{
	withCapacity(defaultCapacity),
	withMaxDepth(defaultMaxDepth),
}

func WithCapacity(n int) Option                                    { return withCapacity(n) }
func WithMaxDepth(depth int) Option                                { return withMaxDepth(depth) }
func WithExpansion(mode ExpansionMode) Option                      { return mode }
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

// Options combines any number of options into one.
func Options(opts ...Option) Option { return options(opts) }

type options []Option
type withCapacity int
type withMaxDepth int
type withLogfn func(mess string, args ...interface{})

func (opts options) apply(in *Interp) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(in)
		}
	}
}

func (n withCapacity) apply(in *Interp) {
	if n < 0 {
		n = 0
	}
	in.stack = make([]int, 0, int(n))
}

func (depth withMaxDepth) apply(in *Interp) { in.maxDepth = int(depth) }

func (mode ExpansionMode) apply(in *Interp) { in.expansion = mode }

func (logfn withLogfn) apply(in *Interp) { in.logfn = logfn }
