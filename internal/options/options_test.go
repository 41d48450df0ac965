package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// pageConfig stands in for the writer configurations assembled elsewhere in
// the module: one validated numeric knob, one free-form knob, one toggle.
type pageConfig struct {
	maxValues int
	name      string
	stats     bool
}

func (c *pageConfig) setMaxValues(n int) error {
	if n <= 0 {
		return errors.New("max values must be positive")
	}
	c.maxValues = n

	return nil
}

func withMaxValues(n int) Option[*pageConfig] {
	return New(func(c *pageConfig) error {
		return c.setMaxValues(n)
	})
}

func withName(name string) Option[*pageConfig] {
	return NoError(func(c *pageConfig) {
		c.name = name
	})
}

func withStats(enabled bool) Option[*pageConfig] {
	return NoError(func(c *pageConfig) {
		c.stats = enabled
	})
}

func TestOption_New(t *testing.T) {
	t.Run("applies the wrapped function", func(t *testing.T) {
		cfg := &pageConfig{}
		err := Apply(cfg, withMaxValues(4096))
		require.NoError(t, err)
		require.Equal(t, 4096, cfg.maxValues)
	})

	t.Run("propagates validation errors", func(t *testing.T) {
		cfg := &pageConfig{}
		err := Apply(cfg, withMaxValues(-1))
		require.Error(t, err)
		require.Contains(t, err.Error(), "max values must be positive")
	})
}

func TestOption_NoError(t *testing.T) {
	cfg := &pageConfig{}
	err := Apply(cfg, withName("pressure"), withStats(true))
	require.NoError(t, err)
	require.Equal(t, "pressure", cfg.name)
	require.True(t, cfg.stats)
}

func TestOption_Apply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &pageConfig{}
		err := Apply(cfg,
			withMaxValues(128),
			withName("first"),
			withName("second"),
		)
		require.NoError(t, err)
		require.Equal(t, 128, cfg.maxValues)
		require.Equal(t, "second", cfg.name)
	})

	t.Run("stops at the first error", func(t *testing.T) {
		cfg := &pageConfig{}
		err := Apply(cfg,
			withMaxValues(128),
			withMaxValues(0),
			withName("unreached"),
		)
		require.Error(t, err)
		require.Equal(t, 128, cfg.maxValues)
		require.Equal(t, "", cfg.name)
	})

	t.Run("accepts an empty option list", func(t *testing.T) {
		cfg := &pageConfig{}
		require.NoError(t, Apply(cfg))
		require.Equal(t, pageConfig{}, *cfg)
	})
}

func TestOption_DifferentTargetTypes(t *testing.T) {
	var n int
	opt := NoError(func(p *int) {
		*p = 42
	})

	require.NoError(t, Apply(&n, opt))
	require.Equal(t, 42, n)
}
