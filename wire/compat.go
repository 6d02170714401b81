package wire

import (
	"os"
)

// Config controls optional behaviors for compatibility/conformance.
// Defaults preserve the baseline library behavior.
type Config struct {
	// ValidateUTF8OnDecode: when true, DecodeString rejects payloads that
	// are not well-formed UTF-8 with ErrInvalidUTF8. When false (default),
	// the raw bytes are reinterpreted as text without validation, matching
	// proto2-era permissive string handling.
	ValidateUTF8OnDecode bool
}

var config Config

// SetConfig sets the global wire configuration. Defaults remain
// zero-valued unless explicitly changed by the caller.
func SetConfig(c Config) { config = c }

func init() {
	// Optional env toggle for test harnesses; default remains unchanged if unset.
	if v := os.Getenv("PROTOSCAN_VALIDATE_UTF8"); v == "1" || v == "true" {
		config.ValidateUTF8OnDecode = true
	}
}
