package cli

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"

	"github.com/fivemoreminix/ameliaview/internal/log"
)

type logConfig struct {
	Level  string `default:"info" enum:"debug,info,warn,error" env:"LOG_LEVEL" help:"Set log level."`
	Pretty bool   `default:"false" help:"Write human readable logs instead of JSON." negatable:""`
	File   string `help:"Append logs to this file. The viewer discards logs unless this is set." type:"path"`
}

func (*logConfig) group() kong.Group {
	return kong.Group{Key: "log", Title: "Logging options"}
}

// start configures the global logger. Logs go to stderr, or to File when it
// is set; interactive commands pass quiet so that logs never draw over the
// screen. The returned function closes the log file.
func (f *logConfig) start(stderr io.Writer, quiet bool) (func(), error) {
	out := stderr
	if quiet {
		out = io.Discard
	}

	done := func() {}
	if f.File != "" {
		file, err := os.OpenFile(f.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return done, errors.Wrap(err, "open log file")
		}
		out = file
		done = func() { _ = file.Close() }
	}

	log.Configure(log.Config{
		Level:   f.Level,
		Output:  out,
		Pretty:  f.Pretty,
		Service: appName,
	})
	return done, nil
}
