package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level is a logging verbosity, from most to least verbose
type Level int

// Verbosity levels accepted by SetLevel
const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

// backendLevels maps each Level to its go-logging counterpart
var backendLevels = map[Level]logging.Level{
	Debug:   logging.DEBUG,
	Info:    logging.INFO,
	Notice:  logging.NOTICE,
	Warning: logging.WARNING,
	Error:   logging.ERROR,
}

var lineFormat = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

// backend is shared by every logger; modules are only a label in the output
var backend logging.LeveledBackend

// Logger is a leveled logger tagged with a module name
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns the logger for a module such as "renderer" or "scene"
func New(module string) Logger {
	return logging.MustGetLogger(module)
}

// SetSink redirects every logger to sink, keeping the current level
func SetSink(sink io.Writer) {
	level := logging.NOTICE
	if backend != nil {
		level = backend.GetLevel("")
	}

	formatted := logging.NewBackendFormatter(logging.NewLogBackend(sink, "", 0), lineFormat)
	backend = logging.AddModuleLevel(formatted)
	backend.SetLevel(level, "")
	logging.SetBackend(backend)
}

// SetLevel hides every message below level. Unknown levels are ignored.
func SetLevel(level Level) {
	if backendLevel, ok := backendLevels[level]; ok {
		backend.SetLevel(backendLevel, "")
	}
}

func init() {
	SetSink(os.Stderr)
}
