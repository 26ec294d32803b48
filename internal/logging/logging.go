// Package logging configures the process-wide logrus logger.
package logging

import (
	"io"

	nested "github.com/antonfisher/nested-logrus-formatter"
	log "github.com/sirupsen/logrus"
)

// Setup points the standard logger at w with the nested formatter and the
// given level. Unknown levels fall back to info.
func Setup(w io.Writer, level string) {
	log.SetOutput(w)
	log.SetFormatter(&nested.Formatter{
		HideKeys:        true,
		FieldsOrder:     []string{"module", "event", "name"},
		TimestampFormat: "15:04:05",
		NoColors:        true,
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}

// Module returns a logger entry tagged with the component name.
func Module(name string) *log.Entry {
	return log.WithFields(log.Fields{
		"module": name,
	})
}
