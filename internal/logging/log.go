// Package logging configures the logrus logger shared by the stylec commands.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Setup points the standard logger at w with the given level and format.
// An unknown level falls back to info.
func Setup(level string, json bool, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	logrus.SetOutput(w)

	if json {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
		})
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}

// For returns a logger entry tagged with the command name
func For(command string) *logrus.Entry {
	return logrus.WithField("cmd", command)
}
