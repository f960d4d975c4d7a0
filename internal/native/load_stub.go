//go:build !(linux || darwin || freebsd)

package native

import "errors"

// ErrUnsupportedPlatform is returned on hosts where the engine cannot be
// dlopen'd through purego.
var ErrUnsupportedPlatform = errors.New("native: dialog engine loading is not supported on this platform")

// Load is a stub on platforms without dlopen support.
func Load(path string) (*Table, error) {
	return nil, ErrUnsupportedPlatform
}
