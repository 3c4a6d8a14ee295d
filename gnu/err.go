package gnu

import (
	"github.com/ezrec/armtarget/translate"
)

var f = translate.From

// ErrNoToolchain reports a cross gcc that could not be found.
type ErrNoToolchain string

func (err ErrNoToolchain) Error() string {
	return f("cross compiler '%v' not found", string(err))
}

// ErrConfig wraps a search-configuration load failure.
type ErrConfig struct {
	Path string
	Err  error
}

func (err ErrConfig) Error() string {
	return f("config %v: %v", err.Path, err.Err)
}

func (err ErrConfig) Unwrap() error {
	return err.Err
}
