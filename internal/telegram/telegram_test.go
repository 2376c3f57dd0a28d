package telegram

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"code.sztanpet.net/zvpsz/flight-announcer/internal/flight"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sent struct {
	msgs []tgbotapi.MessageConfig
	err  error
}

func (s *sent) send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	s.msgs = append(s.msgs, c.(tgbotapi.MessageConfig))
	return tgbotapi.Message{}, s.err
}

func TestMain(m *testing.M) {
	MaxSendDurr = time.Microsecond
	m.Run()
}

func TestChunks(t *testing.T) {
	assert.Equal(t, []string{"short"}, chunks("short", 16))
	assert.Equal(t, []string{strings.Repeat("a", 16)}, chunks(strings.Repeat("a", 16), 16))

	c := chunks(strings.Repeat("a", 30), 16)
	assert.Equal(t, []string{
		strings.Repeat("a", 12) + " (1)",
		strings.Repeat("a", 12) + " (2)",
		"aaaaaa (3)",
	}, c)
	for _, s := range c {
		assert.LessOrEqual(t, len(s), 16)
	}

	// a three byte arrow never gets cut
	c = chunks(strings.Repeat("→", 10), 16)
	assert.Equal(t, "→→→→ (1)", c[0])
	assert.Equal(t, "→→→→ (2)", c[1])
	assert.Equal(t, "→→ (3)", c[2])

	assert.Panics(t, func() { chunks(strings.Repeat("a", 200), 16) })
}

func TestSend(t *testing.T) {
	s := &sent{}
	b := newBot(context.Background(), -1001, s.send)

	require.NoError(t, b.Send(strings.Repeat("x", maxMessageSize+10), true))
	require.Len(t, s.msgs, 2)
	assert.Equal(t, int64(-1001), s.msgs[0].ChatID)
	assert.True(t, s.msgs[0].DisableNotification)
	assert.True(t, strings.HasSuffix(s.msgs[1].Text, " (2)"))

	s.err = errors.New("bad gateway")
	assert.EqualError(t, b.Send("hi", false), "bad gateway")
}

func TestSendCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := &sent{}
	b := newBot(ctx, 1, s.send)

	assert.Error(t, b.Send("hi", false))
	assert.Empty(t, s.msgs)
}

func TestAnnouncement(t *testing.T) {
	r := flight.NewRecord(flight.Observation{
		Callsign:     "UAL123",
		TypeCode:     "B737",
		Origin:       "ORD",
		Destination:  "LGA",
		AltitudeFeet: flight.Altitude(3500),
	})
	assert.Equal(t, "✈ United 123 (Boeing 737)\nChicago → New York\nAltitude: 3500FT", Announcement(r))

	r = flight.NewRecord(flight.Observation{Callsign: "ACA714", Origin: "YYZ"})
	a := Announcement(r)
	assert.Contains(t, a, "Air Canada 714")
	assert.Contains(t, a, "Toronto → N/A")
	assert.Contains(t, a, "Altitude: N/A")
	assert.Contains(t, a, "🇨🇦")
}

func TestCommand(t *testing.T) {
	s := &sent{}
	b := newBot(context.Background(), 1, s.send)
	status := func() string { return "mode: weather" }

	b.command("hello", status)
	b.command("", status)
	assert.Empty(t, s.msgs)

	b.command("/status", status)
	b.command("/status@announcer_bot now", status)
	require.Len(t, s.msgs, 2)
	assert.Equal(t, "mode: weather", s.msgs[1].Text)
}
