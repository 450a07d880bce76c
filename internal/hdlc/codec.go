package hdlc

import "github.com/rs/zerolog"

// Codec encodes and decodes frames. A Codec holds no per-call state: Encode
// and Decode are pure functions of their inputs and are safe to call from
// independent goroutines as long as each call owns its frame and buffer.
type Codec struct {
	maxInfo int
	log     zerolog.Logger
}

// Option configures a Codec.
type Option func(*Codec)

// WithMaxInfoLen bounds the information field accepted by Encode and Decode.
// Values outside 0..MaxInfoLen clamp to MaxInfoLen.
func WithMaxInfoLen(n int) Option {
	return func(c *Codec) {
		if n < 0 || n > MaxInfoLen {
			n = MaxInfoLen
		}
		c.maxInfo = n
	}
}

// WithLogger installs a diagnostic sink. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Codec) {
		c.log = log
	}
}

// New returns a Codec accepting the full MaxInfoLen information field and
// logging nowhere.
func New(opts ...Option) *Codec {
	c := &Codec{
		maxInfo: MaxInfoLen,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MaxEncodedLen returns the wire-size upper bound for a frame carrying
// infoLen information bytes: two flags plus the worst case of every content
// byte (address, control, info, two FCS bytes) needing an escape.
func MaxEncodedLen(infoLen int) int {
	return 2 + 2*(infoLen+4)
}

var defaultCodec = New()

// Encode serializes f with the default codec.
func Encode(f *Frame, dst []byte) (int, error) {
	return defaultCodec.Encode(f, dst)
}

// Decode parses one frame from src with the default codec.
func Decode(src []byte) (*Frame, error) {
	return defaultCodec.Decode(src)
}
