//go:build !unix

package terminal

import "errors"

type unsupportedBackend struct{}

// NewUnix returns a backend that always fails to initialize on this platform
func NewUnix(Options) Backend {
	return unsupportedBackend{}
}

func (unsupportedBackend) Init() error {
	return Unavailable("init", errors.New("raw terminal not supported on this platform"))
}

func (unsupportedBackend) Fini() {}

func (unsupportedBackend) Size() (int, int, error) {
	return 0, 0, Unavailable("size", nil)
}

func (unsupportedBackend) Colors() int { return 0 }

func (unsupportedBackend) Write([]byte) error {
	return ioError("write", errors.ErrUnsupported)
}

func (unsupportedBackend) Flush() error {
	return ioError("flush", errors.ErrUnsupported)
}
