package logwriter

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/juju/loggo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notifier struct {
	mu   sync.Mutex
	msgs []string
	mute []bool
	done chan struct{}
}

func (n *notifier) Send(txt string, disableNotification bool) error {
	n.mu.Lock()
	n.msgs = append(n.msgs, txt)
	n.mute = append(n.mute, disableNotification)
	n.mu.Unlock()
	n.done <- struct{}{}
	return nil
}

var entry = loggo.Entry{
	Level:     loggo.WARNING,
	Module:    "main.source",
	Filename:  "/home/pi/src/flight-announcer/internal/source/weather.go",
	Line:      42,
	Timestamp: time.Date(2024, 7, 17, 16, 51, 0, 0, time.UTC),
	Message:   "metar: unexpected status: 502",
}

func TestFormat(t *testing.T) {
	line := formatEntry(entry)
	assert.Equal(t, "[W4|main.source:weather.go:42] metar: unexpected status: 502", line)
	assert.Equal(t, "[2024-07-17 16:51:00] internal/source/weather.go:42 "+line+"\n", fileLine(entry, line))
}

func TestWrite(t *testing.T) {
	var out, stderr bytes.Buffer
	n := &notifier{done: make(chan struct{}, 4)}
	w := &writer{out: &out, stderr: &stderr, bot: n}

	w.Write(entry)
	<-n.done

	debug := entry
	debug.Level = loggo.DEBUG
	w.Write(debug)

	info := entry
	info.Level = loggo.INFO
	w.Write(info)
	<-n.done

	assert.Equal(t, out.String(), stderr.String())
	assert.Equal(t, 3, bytes.Count(out.Bytes(), []byte("\n")))

	n.mu.Lock()
	defer n.mu.Unlock()
	require.Len(t, n.msgs, 2)
	assert.ElementsMatch(t, []bool{false, true}, n.mute, "only warnings notify")
}

func TestWriteWithoutBot(t *testing.T) {
	var out bytes.Buffer
	w := &writer{out: &out}
	w.Write(entry)
	assert.Contains(t, out.String(), "metar: unexpected status: 502")
}
