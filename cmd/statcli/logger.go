// cmd/statcli/logger.go
package statcli

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mwiater/statcli/dataset"
)

const (
	logFormatJSON = "json"
	logFormatText = "text"
)

// newLogger builds a zerolog logger writing to w in the given level and
// format.
func newLogger(w io.Writer, level, format string) (zerolog.Logger, error) {
	logLvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	var logWriter io.Writer
	switch strings.ToLower(format) {
	case logFormatJSON:
		logWriter = w

	case logFormatText:
		logWriter = zerolog.ConsoleWriter{Out: w, NoColor: true}

	default:
		return zerolog.Nop(), fmt.Errorf("invalid logging format: %s", format)
	}

	return zerolog.New(logWriter).Level(logLvl).With().Timestamp().Logger(), nil
}

// logIngest reports ingestion warnings. Neither condition stops the command.
func logIngest(logger zerolog.Logger, path string, rep dataset.Report) {
	if rep.Truncated {
		logger.Warn().
			Str("input", path).
			Int("max", dataset.MaxValues).
			Msg("maximum number of values exceeded; remaining values ignored")
	}
	if rep.Malformed != "" {
		logger.Warn().
			Str("input", path).
			Str("token", rep.Malformed).
			Int("read", rep.Count).
			Msg("error reading input; stopped at token")
	}
	logger.Debug().Str("input", path).Int("count", rep.Count).Msg("input loaded")
}
