package scanner

// Options configures scanner construction.
type Options struct {
	// RetainComments keeps comment tokens in the output stream.
	// When false (the default) comments are skipped like whitespace.
	RetainComments bool
}

// DefaultOptions returns the default scanner configuration.
func DefaultOptions() Options {
	return Options{}
}
