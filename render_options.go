package mdspan

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	softWrap        bool
	trailingNewline bool
	noReset         bool
}

// WithSoftWrap enables breaking words longer than the wrap width.
func WithSoftWrap(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.softWrap = enabled
	}
}

// WithTrailingNewline terminates the output with a newline when it does not
// already end with one.
func WithTrailingNewline(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.trailingNewline = enabled
	}
}

// WithoutReset skips the ANSI reset after each styled run. Useful when the
// caller manages terminal state itself.
func WithoutReset(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.noReset = enabled
	}
}
