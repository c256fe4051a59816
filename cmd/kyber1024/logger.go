// logger.go - Kyber1024 driver logging.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to kyber1024, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package main

import (
	"io"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const consoleTimeFormat = time.RFC3339

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}
}

// newLogger returns a console logger at the named level.  Nothing secret is
// ever handed to it: only sizes, paths and fingerprints of public artifacts.
func newLogger(level string, out io.Writer) (*zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}
	if out == nil {
		out = colorable.NewColorableStderr()
	}

	log := zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: consoleTimeFormat,
	}).Level(lvl).With().Timestamp().Logger()
	return &log, nil
}
