package shortcode

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger receives debug output from extraction and tree building. It
// discards everything until replaced.
var Logger logrus.FieldLogger = newDiscardLogger()

func newDiscardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
