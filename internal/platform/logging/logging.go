package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Setup routes log output to a file under the data directory. Stderr is
// reserved for the TUI, so the logger stays quiet there; if the file cannot
// be opened logging is discarded rather than failing startup.
func Setup(dataPath string, verbose bool) {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	if err := os.MkdirAll(dataPath, 0o755); err != nil {
		logrus.SetOutput(io.Discard)
		return
	}
	file, err := os.OpenFile(filepath.Join(dataPath, "focusforge.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		logrus.SetOutput(io.Discard)
		return
	}
	logrus.SetOutput(file)
}
