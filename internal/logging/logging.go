package logging

import (
	"io"
	"io/ioutil"
	"log"
	"os"
	"strings"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelNone
)

var (
	debug    *log.Logger
	info     *log.Logger
	warning  *log.Logger
	errorLog *log.Logger
	out      io.Writer = os.Stderr
	current  Level
)

func init() {
	flags := log.Ldate | log.Ltime | log.LUTC
	debug = log.New(ioutil.Discard, "D ", flags)
	info = log.New(ioutil.Discard, "I ", flags)
	warning = log.New(ioutil.Discard, "W ", flags)
	errorLog = log.New(ioutil.Discard, "E ", flags)

	SetLevel(LevelWarning)
}

// ParseLevel maps a level name (debug, info, warning, error) to a Level.
// Unknown names disable logging.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warning", "warn":
		return LevelWarning
	case "error":
		return LevelError
	default:
		return LevelNone
	}
}

// SetLevel enables all loggers at or above the given level.
func SetLevel(l Level) {
	current = l
	loggers := []*log.Logger{debug, info, warning, errorLog}
	for i, lg := range loggers {
		if Level(i) >= l {
			lg.SetOutput(out)
		} else {
			lg.SetOutput(ioutil.Discard)
		}
	}
}

// SetOutput redirects enabled loggers to w.
func SetOutput(w io.Writer) {
	out = w
	SetLevel(current)
}

func Debug(msg string, v ...interface{}) {
	debug.Printf(msg, v...)
}

func Info(msg string, v ...interface{}) {
	info.Printf(msg, v...)
}

func Warning(msg string, v ...interface{}) {
	warning.Printf(msg, v...)
}

func Error(msg string, v ...interface{}) {
	errorLog.Printf(msg, v...)
}
