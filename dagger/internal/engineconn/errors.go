package engineconn

import (
	"errors"
	"fmt"
)

var ErrDownloadClient = errors.New("download client error")

// DownloadClientError reports that the CLI binary could not be obtained.
type DownloadClientError struct {
	Version string
	Err     error
}

func (e *DownloadClientError) Error() string {
	return fmt.Sprintf("download dagger CLI v%s: %v", e.Version, e.Err)
}

func (e *DownloadClientError) Unwrap() error {
	return e.Err
}

func (e *DownloadClientError) Is(target error) bool {
	return target == ErrDownloadClient
}
