// Package lol (log of location) is a small leveled logger that prints a
// timestamp, a coloured level tag and the source location of each print. The
// codec packages only ever log at debug and trace, so the default info level
// keeps them silent.
package lol

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"go.uber.org/atomic"
)

const (
	Off = iota
	Fatal
	Error
	Warn
	Info
	Debug
	Trace
)

var LevelNames = []string{
	"off",
	"fatal",
	"error",
	"warn",
	"info",
	"debug",
	"trace",
}

type (
	// Ln prints lists of interfaces with spaces in between
	Ln func(a ...any)
	// F prints like fmt.Printf surrounded by log details
	F func(format string, a ...any)
	// S prints a spew.Sdump of the arguments
	S func(a ...any)
	// C accepts a closure so the message is only built when the level is active
	C func(closure func() string)
	// Chk prints the error if it is not nil and returns true in that case
	Chk func(e error) bool
	// Err constructs an error with fmt.Errorf, logs it and returns it
	Err func(format string, a ...any) error

	// LevelPrinter is the set of log printers on each log level.
	LevelPrinter struct {
		Ln
		F
		S
		C
		Chk
		Err
	}

	// LevelSpec is the name, ID and Colorizer for a log level.
	LevelSpec struct {
		ID        int
		Name      string
		Colorizer func(a ...any) string
	}
)

// LevelSpecs specifies the id, string name and color-printing function
var LevelSpecs = []LevelSpec{
	{Off, "", NoSprint},
	{Fatal, "FTL", color.New(color.BgRed, color.FgHiWhite).Sprint},
	{Error, "ERR", color.New(color.FgHiRed).Sprint},
	{Warn, "WRN", color.New(color.FgHiYellow).Sprint},
	{Info, "INF", color.New(color.FgHiGreen).Sprint},
	{Debug, "DBG", color.New(color.FgHiBlue).Sprint},
	{Trace, "TRC", color.New(color.FgHiMagenta).Sprint},
}

var (
	// Level is the level that the logger is printing at.
	Level atomic.Int32
	// NoTimeStamp disables the timestamp prefix, handy for tests and pipes.
	NoTimeStamp atomic.Bool
)

// NoSprint is a noop for sprint (it returns nothing no matter what is given to it).
func NoSprint(a ...any) string { return "" }

// Log is a set of log printers for the various Level items.
type Log struct {
	F, E, W, I, D, T LevelPrinter
}

// Check is the set of log levels for a Check operation (prints an error if the
// error is not nil).
type Check struct {
	F, E, W, I, D, T Chk
}

// Errorf prints an error that is also returned as an error, so the error is
// logged at the site.
type Errorf struct {
	F, E, W, I, D, T Err
}

// Logger is a collection of things that creates a logger, including levels.
type Logger struct {
	*Log
	*Check
	*Errorf
}

// Main is the main logger.
var Main = &Logger{}

// out is the destination shared by every printer created through New with a
// nil writer; SetWriter swaps it.
var out = &swapWriter{w: os.Stderr}

type swapWriter struct {
	sync.Mutex
	w io.Writer
}

func (s *swapWriter) Write(p []byte) (n int, err error) {
	s.Lock()
	defer s.Unlock()
	return s.w.Write(p)
}

func init() {
	Main.Log, Main.Check, Main.Errorf = New(nil)
	SetLoggers(Info)
}

// SetWriter redirects the output of the Main logger.
func SetWriter(w io.Writer) {
	out.Lock()
	out.w = w
	out.Unlock()
}

// SetLoggers configures a log level.
func SetLoggers(level int) {
	if level < Off || level > Trace {
		level = Info
	}
	Level.Store(int32(level))
	Main.Log.T.F("log level %s", LevelSpecs[level].Colorizer(LevelNames[level]))
}

// GetLogLevel returns the log level number of a string log level.
func GetLogLevel(level string) (i int) {
	level = strings.ToLower(strings.TrimSpace(level))
	for i = range LevelNames {
		if level == LevelNames[i] {
			return i
		}
	}
	return Info
}

// SetLogLevel sets the log level of the logger by name. Unknown names select
// info.
func SetLogLevel(level string) { SetLoggers(GetLogLevel(level)) }

// JoinStrings joins together anything into a set of strings with space
// separating the items.
func JoinStrings(a ...any) (s string) {
	for i := range a {
		s += fmt.Sprint(a[i])
		if i < len(a)-1 {
			s += " "
		}
	}
	return
}

var msgCol = color.New(color.FgBlue).Sprint

func emit(w io.Writer, l int32, text string) {
	_, _ = fmt.Fprintf(w,
		"%s%s %s %s\n",
		msgCol(TimeStamper()),
		LevelSpecs[l].Colorizer(LevelSpecs[l].Name),
		text,
		msgCol(GetLoc(3)),
	)
}

// GetPrinter returns a full logger that writes to the provided io.Writer.
func GetPrinter(l int32, writer io.Writer) LevelPrinter {
	return LevelPrinter{
		Ln: func(a ...any) {
			if Level.Load() < l {
				return
			}
			emit(writer, l, JoinStrings(a...))
		},
		F: func(format string, a ...any) {
			if Level.Load() < l {
				return
			}
			emit(writer, l, fmt.Sprintf(format, a...))
		},
		S: func(a ...any) {
			if Level.Load() < l {
				return
			}
			emit(writer, l, spew.Sdump(a...))
		},
		C: func(closure func() string) {
			if Level.Load() < l {
				return
			}
			emit(writer, l, closure())
		},
		Chk: func(e error) bool {
			if e == nil {
				return false
			}
			if Level.Load() >= l {
				emit(writer, l, e.Error())
			}
			return true
		},
		Err: func(format string, a ...any) error {
			if Level.Load() >= l {
				emit(writer, l, fmt.Sprintf(format, a...))
			}
			return fmt.Errorf(format, a...)
		},
	}
}

// New creates a new logger with all the levels. A nil writer means the shared
// output that SetWriter controls.
func New(writer io.Writer) (l *Log, c *Check, errorf *Errorf) {
	if writer == nil {
		writer = out
	}
	l = &Log{
		T: GetPrinter(Trace, writer),
		D: GetPrinter(Debug, writer),
		I: GetPrinter(Info, writer),
		W: GetPrinter(Warn, writer),
		E: GetPrinter(Error, writer),
		F: GetPrinter(Fatal, writer),
	}
	c = &Check{
		F: l.F.Chk,
		E: l.E.Chk,
		W: l.W.Chk,
		I: l.I.Chk,
		D: l.D.Chk,
		T: l.T.Chk,
	}
	errorf = &Errorf{
		F: l.F.Err,
		E: l.E.Err,
		W: l.W.Err,
		I: l.I.Err,
		D: l.D.Err,
		T: l.T.Err,
	}
	return
}

// TimeStamper generates the timestamp for logs.
func TimeStamper() (s string) {
	if NoTimeStamp.Load() {
		return
	}
	return time.Now().Format("2006-01-02T15:04:05.000Z07:00 ")
}

// GetLoc returns the code location of the caller.
func GetLoc(skip int) (output string) {
	_, file, line, _ := runtime.Caller(skip)
	return fmt.Sprintf("%s:%d", file, line)
}
