package cmd

import (
	"io"
	"os"
	"strings"
)

// CacheIdentifier is the kong variable name holding the cache directory path
// interpolated into flag defaults.
const CacheIdentifier = "cachedir"

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// openSource returns a reader for the given source: os.Stdin when source is
// "-", otherwise the named file. The returned closer is never nil.
func openSource(source string) (io.Reader, io.Closer, error) {
	if source == stdinSource {
		return os.Stdin, io.NopCloser(nil), nil
	}

	file, err := os.Open(source)
	if err != nil {
		return nil, nil, err
	}

	return file, file, nil
}

// joinArgs joins positional expression arguments into a single source string.
func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
