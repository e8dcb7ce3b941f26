package logs

import (
	"io"
	"os"
)

// Writer receives terminal logs and launcher diagnostics.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
