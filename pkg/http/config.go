package http

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/shapestone/shape-frame/internal/lexer"
)

// Charset selects the bytes allowed in header values.
type Charset = lexer.Charset

const (
	// CharsetASCII accepts HTAB and printable ASCII (RFC 9110).
	CharsetASCII = lexer.ASCII
	// CharsetLatin1 also accepts ISO-8859-1 bytes 0xA0..0xFF (RFC 2616).
	CharsetLatin1 = lexer.Latin1
)

// EnvLogLevel overrides Config.LogLevel when LoadConfig is used.
const EnvLogLevel = "SHAPE_FRAME_LOG_LEVEL"

// Defaults used by DefaultConfig.
const (
	DefaultMaxLineBytes = 8 << 10
	DefaultMaxHeaders   = 100
)

// Config controls a Reader. The zero value is usable: ASCII header values,
// no limits, and a disabled logger.
type Config struct {
	HeaderValueCharset Charset
	// MaxLineBytes bounds a single start or header line; <= 0 disables.
	MaxLineBytes int
	// MaxHeaders bounds the number of header lines; <= 0 disables.
	MaxHeaders int
	// MaxBodyBytes bounds Content-Length; <= 0 disables.
	MaxBodyBytes int64
	// LogLevel, if set, caps Logger's level ("debug", "info", "warn", ...).
	LogLevel string
	Logger   zerolog.Logger
}

// DefaultConfig returns the configuration NewDecoder and Unmarshal use.
func DefaultConfig() Config {
	return Config{
		HeaderValueCharset: CharsetASCII,
		MaxLineBytes:       DefaultMaxLineBytes,
		MaxHeaders:         DefaultMaxHeaders,
		Logger:             zerolog.Nop(),
	}
}

type fileConfig struct {
	HeaderValueCharset string `toml:"header_value_charset"`
	MaxLineBytes       int    `toml:"max_line_bytes"`
	MaxHeaders         int    `toml:"max_headers"`
	MaxBodyBytes       int64  `toml:"max_body_bytes"`
	LogLevel           string `toml:"log_level"`
}

// LoadConfig reads a TOML file over DefaultConfig. Keys absent from the file
// keep their defaults. The Logger is left as zerolog.Nop(); callers attach
// their own.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load reader config: %w", err)
	}

	if meta.IsDefined("header_value_charset") {
		cs, err := ParseCharset(raw.HeaderValueCharset)
		if err != nil {
			return Config{}, err
		}
		cfg.HeaderValueCharset = cs
	}
	if meta.IsDefined("max_line_bytes") {
		cfg.MaxLineBytes = raw.MaxLineBytes
	}
	if meta.IsDefined("max_headers") {
		cfg.MaxHeaders = raw.MaxHeaders
	}
	if meta.IsDefined("max_body_bytes") {
		cfg.MaxBodyBytes = raw.MaxBodyBytes
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = v
	}

	if err := ValidateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ValidateConfig checks that the configuration is usable.
func ValidateConfig(cfg Config) error {
	if cfg.HeaderValueCharset != CharsetASCII && cfg.HeaderValueCharset != CharsetLatin1 {
		return fmt.Errorf("config: unknown header value charset %d", cfg.HeaderValueCharset)
	}
	if cfg.LogLevel != "" {
		if _, ok := parseLevel(cfg.LogLevel); !ok {
			return fmt.Errorf("config: unknown log level %q", cfg.LogLevel)
		}
	}
	return nil
}

// ParseCharset parses "ascii" or "latin1" (also "iso-8859-1").
func ParseCharset(raw string) (Charset, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "ascii":
		return CharsetASCII, nil
	case "latin1", "latin-1", "iso-8859-1":
		return CharsetLatin1, nil
	default:
		return CharsetASCII, fmt.Errorf("config: unknown header value charset %q", raw)
	}
}
