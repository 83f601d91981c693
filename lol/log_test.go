package lol

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	NoTimeStamp.Store(true)
	defer NoTimeStamp.Store(false)
	l, c, e := New(&buf)
	defer SetLoggers(Info)

	SetLoggers(Info)
	l.D.F("hidden %d", 1)
	require.Zero(t, buf.Len())
	l.I.F("shown %d", 2)
	require.Contains(t, buf.String(), "shown 2")
	require.Contains(t, buf.String(), "log_test.go")

	buf.Reset()
	require.False(t, c.E(nil))
	require.True(t, c.D(errors.New("quiet")))
	require.Zero(t, buf.Len())
	require.True(t, c.E(errors.New("loud")))
	require.Contains(t, buf.String(), "loud")

	buf.Reset()
	err := e.T("made %s", "here")
	require.EqualError(t, err, "made here")
	require.Zero(t, buf.Len())

	SetLogLevel("trace")
	require.Equal(t, int32(Trace), Level.Load())
	l.T.S(struct{ A int }{1})
	l.T.C(func() string { return "closure" })
	require.True(t, strings.Contains(buf.String(), "closure"))
}

func TestGetLogLevel(t *testing.T) {
	require.Equal(t, Debug, GetLogLevel("DEBUG"))
	require.Equal(t, Info, GetLogLevel("nonsense"))
	require.Equal(t, Off, GetLogLevel("off"))
}

func TestSetWriter(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	defer SetWriter(os.Stderr)
	Main.Log.W.Ln("to", "main")
	require.Contains(t, buf.String(), "to main")
}
