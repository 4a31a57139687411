package filedialog

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// DefaultLogFile is where [NewFileLogger] writes when given no path.
const DefaultLogFile = "debug.log"

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// NewFileLogger opens path, truncating it, and returns a debug-level
// logger writing to it. The caller closes the file once the host
// program is done, typically just before quitting.
func NewFileLogger(path string) (*logrus.Logger, *os.File, error) {
	if path == "" {
		path = DefaultLogFile
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("couldn't create %s: %w", path, err)
	}

	l := logrus.New()
	l.SetOutput(f)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})

	return l, f, nil
}
