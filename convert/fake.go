package convert

import (
	"os"

	"github.com/mwalraven/reportkit/format"
)

// Fake is a Converter for tests. It records the paths it was asked to
// convert and, unless Err is set, creates a placeholder output file.
type Fake struct {
	// Calls records every input path passed to Convert.
	Calls []string
	// Err, when set, is returned from Convert instead of converting.
	Err error
}

// Convert records the call and writes an empty PDF placeholder next to
// the input.
func (f *Fake) Convert(inputPath string) (string, error) {
	f.Calls = append(f.Calls, inputPath)
	if f.Err != nil {
		return "", f.Err
	}

	outPath := format.SwapExtension(inputPath, format.PDF)
	if err := os.WriteFile(outPath, []byte("%PDF-1.4\n"), 0o644); err != nil {
		return "", err
	}
	return outPath, nil
}
