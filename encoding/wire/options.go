package wire

// Option customizes a codec.
type Option func(c *Codec)

// WithIndent enables pretty printing with the supplied indent width.
func WithIndent(indent int) Option {
	return func(c *Codec) {
		c.options.Indent = indent
	}
}

// WithUnsorted keeps natural map iteration order instead of sorting keys.
func WithUnsorted() Option {
	return func(c *Codec) {
		c.options.Sort = false
	}
}
