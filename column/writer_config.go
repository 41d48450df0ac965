package column

import (
	"fmt"
	"math"

	"github.com/arloliu/colenc/endian"
	"github.com/arloliu/colenc/errs"
	"github.com/arloliu/colenc/internal/options"
)

const (
	// DefaultMaxPageValues is the page rollover threshold in values.
	DefaultMaxPageValues = 4096

	// DefaultMaxPageBytes is the page rollover threshold on the estimated
	// encoded size. It matches the pooled page buffer's default capacity so
	// a typical page encodes without growing its buffer.
	DefaultMaxPageBytes = 16 * 1024
)

// WriterConfig holds the shared configuration of a column writer. Concrete
// writers embed it and focus on the encoding itself.
type WriterConfig struct {
	engine        endian.EndianEngine
	maxPageValues int
	maxPageBytes  int
	collectStats  bool
	bloomExpected uint
	bloomFP       float64
}

func newWriterConfig() *WriterConfig {
	return &WriterConfig{
		engine:        endian.GetLittleEndianEngine(),
		maxPageValues: DefaultMaxPageValues,
		maxPageBytes:  DefaultMaxPageBytes,
		collectStats:  true,
	}
}

func (c *WriterConfig) setMaxPageValues(n int) error {
	if n <= 0 || n > math.MaxUint32 {
		return fmt.Errorf("%w: max page values %d outside [1, %d]",
			errs.ErrInvalidArgument, n, uint32(math.MaxUint32))
	}
	c.maxPageValues = n

	return nil
}

func (c *WriterConfig) setMaxPageBytes(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: max page bytes must be positive, got %d",
			errs.ErrInvalidArgument, n)
	}
	c.maxPageBytes = n

	return nil
}

func (c *WriterConfig) setBloomFilter(fpRate float64, expectedValues uint) error {
	if expectedValues == 0 {
		return fmt.Errorf("%w: expected value count must be positive", errs.ErrInvalidArgument)
	}
	if fpRate <= 0 || fpRate >= 1 {
		return fmt.Errorf("%w: false-positive rate %v outside (0, 1)", errs.ErrInvalidArgument, fpRate)
	}
	c.bloomFP = fpRate
	c.bloomExpected = expectedValues

	return nil
}

// Option represents a functional option for configuring a column writer.
type Option = options.Option[*WriterConfig]

// WithLittleEndian makes headers and index entries little-endian. It is the
// default.
func WithLittleEndian() Option {
	return options.NoError(func(c *WriterConfig) {
		c.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian makes headers and index entries big-endian. The PLAIN page
// payload keeps its native-endian layout either way.
func WithBigEndian() Option {
	return options.NoError(func(c *WriterConfig) {
		c.engine = endian.GetBigEndianEngine()
	})
}

// WithEngine sets the endian engine for headers and index entries.
func WithEngine(engine endian.EndianEngine) Option {
	return options.New(func(c *WriterConfig) error {
		if engine == nil {
			return fmt.Errorf("%w: nil endian engine", errs.ErrInvalidArgument)
		}
		c.engine = engine

		return nil
	})
}

// WithMaxPageValues sets the page rollover threshold in values.
func WithMaxPageValues(n int) Option {
	return options.New(func(c *WriterConfig) error {
		return c.setMaxPageValues(n)
	})
}

// WithMaxPageBytes sets the page rollover threshold on the estimated
// encoded page size. The estimate is checked after each Append and after
// each AppendBatch chunk, so a page may overshoot the threshold by up to
// one chunk before it seals.
func WithMaxPageBytes(n int) Option {
	return options.New(func(c *WriterConfig) error {
		return c.setMaxPageBytes(n)
	})
}

// WithStatistics enables or disables min/max statistics collection. It is
// enabled by default; disabling it leaves the column and page bounds empty.
func WithStatistics(enabled bool) Option {
	return options.NoError(func(c *WriterConfig) {
		c.collectStats = enabled
	})
}

// WithBloomFilter sizes a bloom filter for the column at the given
// false-positive rate and expected distinct value count.
func WithBloomFilter(fpRate float64, expectedValues uint) Option {
	return options.New(func(c *WriterConfig) error {
		return c.setBloomFilter(fpRate, expectedValues)
	})
}
