package logwriter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"code.sztanpet.net/zvpsz/flight-announcer/internal/config"
	"github.com/juju/loggo"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Notifier forwards log lines somewhere a human looks at, the telegram bot.
type Notifier interface {
	Send(txt string, disableNotification bool) error
}

type writer struct {
	out    io.Writer
	stderr io.Writer
	bot    Notifier
}

const modulePrefix = "flight-announcer/"

// Setup replaces the default loggo writer with one writing a rotated log
// file under the state path, forwarding to bot when it is not nil.
func Setup(bot Notifier, cfg *config.Config) error {
	path, err := os.Executable()
	if err != nil {
		panic("os.Executable() failed! " + err.Error())
	}

	w := &writer{
		out: &lumberjack.Logger{
			Filename:   filepath.Join(cfg.StatePath, filepath.Base(path)+".log"),
			MaxSize:    10,
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		},
		bot: bot,
	}
	if cfg.Debug {
		w.stderr = os.Stderr
	}

	if _, err := loggo.RemoveWriter("default"); err != nil {
		return err
	}
	if err := loggo.RegisterWriter("default", w); err != nil {
		return err
	}

	return loggo.ConfigureLoggers(cfg.LogSpec)
}

func (w *writer) Write(e loggo.Entry) {
	line := formatEntry(e)
	l := fileLine(e, line)

	if _, err := io.WriteString(w.out, l); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write log file: %v\n", err)
	}
	if w.stderr != nil {
		_, _ = io.WriteString(w.stderr, l)
	}

	if w.bot == nil || e.Level < loggo.INFO {
		return
	}
	go func() {
		needNotification := e.Level >= loggo.WARNING
		err := w.bot.Send(line, !needNotification)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v bot send error: %v\n", e.Timestamp.Format("[2006-01-02 15:04:05]"), err)
		}
	}()
}

// fileLine prefixes line with the time and the source path inside the module.
func fileLine(e loggo.Entry, line string) string {
	fp := e.Filename
	if ix := strings.Index(fp, modulePrefix); ix != -1 {
		fp = fp[ix+len(modulePrefix):]
	}

	return fmt.Sprintf("%v%v:%v %v\n",
		e.Timestamp.Format("[2006-01-02 15:04:05] "),
		fp, e.Line,
		line,
	)
}

// formatEntry indicates the level like T1 for TRACE, D2 for DEBUG.
func formatEntry(e loggo.Entry) string {
	return fmt.Sprintf(
		"[%v%v|%v:%v:%v] %v",
		e.Level.String()[:1],
		int(e.Level),
		e.Module,
		filepath.Base(e.Filename),
		e.Line,
		e.Message,
	)
}
