package rgb0

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile encodes frames and writes the capture into dir using the
// SD card runner's naming convention, Sc-<run>-01.rgb. A run of zero
// or less selects run 1. It returns the path written.
func WriteFile(dir string, run int, frames []Frame, opts *EncodeOptions) (string, error) {
	if run <= 0 {
		run = 1
	}
	data, err := Encode(frames, opts)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("Sc-%02d-01.rgb", run))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
