package avatar

import (
	"bytes"
	"context"
	"fmt"

	"github.com/motoki317/sc"
	"go.uber.org/zap"

	"github.com/neatar/neatar/utils/identicon"
	"github.com/neatar/neatar/utils/imaging"
)

type cacheKey struct {
	seed     string
	halfSize int
	format   Format
}

type manager struct {
	c Config
	L *zap.Logger

	cache *sc.Cache[cacheKey, []byte]
}

// NewManager Managerを生成します
func NewManager(c Config, logger *zap.Logger) (Manager, error) {
	if c.HalfSize < identicon.MinHalfSize || c.HalfSize > c.MaxHalfSize {
		return nil, fmt.Errorf("half size %d out of range (%d..%d): %w", c.HalfSize, identicon.MinHalfSize, c.MaxHalfSize, ErrInvalidHalfSize)
	}
	if c.CacheSize <= 0 {
		return nil, fmt.Errorf("cache size must be positive: %d", c.CacheSize)
	}
	m := &manager{
		c: c,
		L: logger.Named("avatar_manager"),
	}
	cache, err := sc.New(m.generate, c.CacheTTL, c.CacheTTL*2, sc.With2QBackend(c.CacheSize))
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}
	m.cache = cache
	return m, nil
}

func (m *manager) generate(_ context.Context, key cacheKey) ([]byte, error) {
	icon := identicon.New([]byte(key.seed), key.halfSize)
	generatedCounter.WithLabelValues(string(key.format)).Inc()

	switch key.format {
	case FormatSVG:
		return []byte(icon.SVG()), nil
	case FormatPNG:
		var b bytes.Buffer
		if err := imaging.EncodeIconPNG(&b, icon); err != nil {
			m.L.Error("failed to encode png", zap.Int("halfSize", key.halfSize), zap.Error(err))
			return nil, fmt.Errorf("failed to encode png: %w", err)
		}
		return b.Bytes(), nil
	default:
		return nil, ErrInvalidFormat
	}
}

func (m *manager) HalfSize() int {
	return m.c.HalfSize
}

func (m *manager) Get(seed []byte, halfSize int, format Format) ([]byte, error) {
	if format != FormatSVG && format != FormatPNG {
		return nil, ErrInvalidFormat
	}
	if halfSize == 0 {
		halfSize = m.c.HalfSize
	}
	if halfSize < identicon.MinHalfSize || halfSize > m.c.MaxHalfSize {
		return nil, ErrInvalidHalfSize
	}

	requestsCounter.WithLabelValues(string(format)).Inc()
	// キャッシュに無い場合はreplaceFnで生成される
	return m.cache.Get(context.Background(), cacheKey{
		seed:     string(seed),
		halfSize: halfSize,
		format:   format,
	})
}

func (m *manager) GetSVG(seed []byte, halfSize int) (string, error) {
	b, err := m.Get(seed, halfSize, FormatSVG)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (m *manager) GetPNG(seed []byte, halfSize int) ([]byte, error) {
	return m.Get(seed, halfSize, FormatPNG)
}

func (m *manager) GetMedia(seed []byte) (*Media, error) {
	svg, err := m.GetSVG(seed, 0)
	if err != nil {
		return nil, err
	}
	return NewMedia(svg)
}
