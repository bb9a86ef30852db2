//go:build !cgo

package window

import "context"

// Run reports that window mode is unavailable.
func Run(_ context.Context, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}
	return ErrUnsupported
}
