package mosaic

import (
	"errors"
	"fmt"
)

// ErrNoImages indicates a build was invoked with an empty record set:
// a zero-sized grid cannot be laid out or encoded.
var ErrNoImages = errors.New("no images to place")

// EncodeError reports that the output mosaic could not be laid out,
// encoded or written. It is the only error class the pipeline surfaces
// once extraction has begun; per-image anomalies are resolved internally.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode mosaic %q: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}
