package commands

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func newLogger(w io.Writer, level, format string) (*logrus.Logger, error) {
	l := logrus.New()
	l.SetOutput(w)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "--log-level")
	}
	l.SetLevel(lvl)

	switch format {
	case "text":
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, errors.Errorf("--log-format must be text or json, got %q", format)
	}
	return l, nil
}
