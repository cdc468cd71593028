package vfs

import (
	"bytes"
	_ "embed"

	"github.com/rs/zerolog"
)

//go:embed portfolio.yaml
var portfolioManifest []byte

// Default builds the portfolio tree shipped with the binary.
func Default(logger zerolog.Logger) (*Filesystem, error) {
	m, err := DecodeManifest(bytes.NewReader(portfolioManifest))
	if err != nil {
		return nil, err
	}
	return m.Build(logger)
}

// MustDefault is like Default but panics on error. The embedded manifest is
// covered by tests, so a failure here is a build defect.
func MustDefault() *Filesystem {
	fsys, err := Default(zerolog.Nop())
	if err != nil {
		panic(err)
	}
	return fsys
}
