package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Option configures label drawing and measuring.
type Option func(*config)

// config holds label configuration.
type config struct {
	face font.Face
}

// defaultConfig returns the default label configuration.
func defaultConfig() config {
	return config{
		face: basicfont.Face7x13,
	}
}

func buildConfig(opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}

// WithFace sets the font face. A nil face keeps the default
// basicfont.Face7x13.
func WithFace(face font.Face) Option {
	return func(c *config) {
		if face != nil {
			c.face = face
		}
	}
}
