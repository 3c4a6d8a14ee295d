package manifest

import (
	"github.com/ezrec/armtarget/translate"
)

var f = translate.From

// ErrManifest wraps an evaluation failure with the manifest name.
type ErrManifest struct {
	Name string
	Err  error
}

func (err ErrManifest) Error() string {
	return f("manifest %v: %v", err.Name, err.Err)
}

func (err ErrManifest) Unwrap() error {
	return err.Err
}
