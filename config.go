package kmp

import "math"

// maxEncodableLen is the longest needle whose table lengths fit the
// uint32 encoding on every platform int size.
const maxEncodableLen = math.MaxInt32

// Config configures how a Matcher is built and how it scans.
//
// The zero value only accepts the empty needle; start from DefaultConfig.
type Config struct {
	// UseMemchr enables first-byte skipping. While no needle byte is matched,
	// the scan jumps to the next occurrence of the needle's first byte using
	// simd.Memchr instead of stepping one offset at a time.
	//
	// Results are identical either way. Skipping pays off when the first
	// byte is rare in the haystack and costs a little when it is common.
	//
	// Default: true
	UseMemchr bool

	// MaxNeedleLen is the longest needle CompileWithConfig accepts.
	//
	// Default: math.MaxInt32 (the table encoding limit)
	MaxNeedleLen int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		UseMemchr:    true,
		MaxNeedleLen: maxEncodableLen,
	}
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of acceptable range.
func (c *Config) Validate() error {
	if c.MaxNeedleLen < 0 {
		return &Error{
			Kind:    InvalidConfig,
			Message: "MaxNeedleLen must be >= 0",
		}
	}

	if c.MaxNeedleLen > maxEncodableLen {
		return &Error{
			Kind:    InvalidConfig,
			Message: "MaxNeedleLen must be <= math.MaxInt32",
		}
	}

	return nil
}

// WithMemchr returns a new config with first-byte skipping enabled/disabled
func (c Config) WithMemchr(enabled bool) Config {
	c.UseMemchr = enabled
	return c
}

// WithMaxNeedleLen returns a new config with the specified needle length limit
func (c Config) WithMaxNeedleLen(n int) Config {
	c.MaxNeedleLen = n
	return c
}
