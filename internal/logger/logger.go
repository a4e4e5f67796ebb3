package logger

import (
	"fmt"
	"log"
	"strings"

	"github.com/fatih/color"
)

// Logger prints leveled, module-tagged lines. Colors apply only to the
// level tag so log files stay grep-friendly.
type Logger struct {
	debug bool
}

func New(debug bool) *Logger {
	return &Logger{debug: debug}
}

var (
	infoTag  = color.New(color.FgGreen).Sprint("INFO")
	warnTag  = color.New(color.FgYellow).Sprint("WARN")
	errorTag = color.New(color.FgRed).Sprint("ERROR")
	debugTag = color.New(color.FgCyan).Sprint("DEBUG")
)

func (l *Logger) Info(module, msg string) {
	l.print(infoTag, module, msg)
}

func (l *Logger) Warn(module, msg string) {
	l.print(warnTag, module, msg)
}

func (l *Logger) Error(module, msg string) {
	l.print(errorTag, module, msg)
}

func (l *Logger) Debug(module, msg string) {
	if !l.debug {
		return
	}
	l.print(debugTag, module, msg)
}

func (l *Logger) Infof(module, format string, args ...any) {
	l.Info(module, fmt.Sprintf(format, args...))
}

func (l *Logger) Warnf(module, format string, args ...any) {
	l.Warn(module, fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(module, format string, args ...any) {
	l.Error(module, fmt.Sprintf(format, args...))
}

func (l *Logger) print(tag, module, msg string) {
	log.Printf("[%s] [%s] %s", tag, strings.ToUpper(module), msg)
}
