package yaml

import "github.com/sirupsen/logrus"

// log is used only by the adapters (file.go, watch.go) that touch the
// filesystem or a channel. The pure scanner/parser/serializer
// core never logs.
var log logrus.FieldLogger = logrus.StandardLogger()

// SetLogger overrides the package-level logger used by adapters, for
// embedding in a host application's own structured logging.
func SetLogger(l logrus.FieldLogger) {
	if l != nil {
		log = l
	}
}
