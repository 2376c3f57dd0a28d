package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"code.sztanpet.net/zvpsz/flight-announcer/internal/flight"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/juju/loggo"
	"golang.org/x/time/rate"
)

var logger = loggo.GetLogger("main.telegram")

// MaxSendDurr configures the limiter to send at most 1 message per MaxSendDurr
var MaxSendDurr = 500 * time.Millisecond

const (
	// https://github.com/yagop/node-telegram-bot-api/issues/165
	maxMessageSize = 4096
	maxChunks      = 9
)

type Bot struct {
	ctx       context.Context
	channelID int64
	api       *tgbotapi.BotAPI
	send      func(tgbotapi.Chattable) (tgbotapi.Message, error)
	limiter   *rate.Limiter
}

func New(ctx context.Context, token string, channelID int64) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	t := newBot(ctx, channelID, api.Send)
	t.api = api
	return t, nil
}

func newBot(ctx context.Context, channelID int64, send func(tgbotapi.Chattable) (tgbotapi.Message, error)) *Bot {
	return &Bot{
		ctx:       ctx,
		channelID: channelID,
		send:      send,
		// limmit message spam to once every MaxSendDurr
		limiter: rate.NewLimiter(rate.Every(MaxSendDurr), 1),
	}
}

// Send sends a message to the channel, optionally sending notifications depending on disableNotification
// internally ratelimited to once every MaxSendDurr
func (t *Bot) Send(txt string, disableNotification bool) error {
	for _, c := range chunks(txt, maxMessageSize) {
		if err := t.limiter.Wait(t.ctx); err != nil {
			return err
		}

		msg := tgbotapi.NewMessage(t.channelID, c)
		msg.DisableNotification = disableNotification
		if _, err := t.send(msg); err != nil {
			return err
		}
	}

	return nil
}

// chunks cuts txt into messages of at most max bytes, numbering them when
// there is more than one. Runes are never split.
func chunks(txt string, max int) []string {
	if len(txt) <= max {
		return []string{txt}
	}

	// room for " (9)"
	limit := max - 4
	var out []string
	for len(txt) > 0 {
		if len(out) == maxChunks {
			panic("message too long")
		}
		end := limit
		if end >= len(txt) {
			end = len(txt)
		} else {
			for end > 0 && !utf8.RuneStart(txt[end]) {
				end--
			}
		}
		out = append(out, txt[:end]+" ("+strconv.Itoa(len(out)+1)+")")
		txt = txt[end:]
	}

	return out
}

// Announce posts a newly detected flight.
func (t *Bot) Announce(rec flight.Record) error {
	return t.Send(Announcement(rec), false)
}

// Announcement describes rec with the friendly airline and airport names.
func Announcement(rec flight.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✈ %v", flight.AirlineName(rec.Callsign))
	if rec.AircraftType != "" {
		fmt.Fprintf(&b, " (%v)", rec.AircraftType)
	}
	if rec.Origin != "" || rec.Destination != "" {
		fmt.Fprintf(&b, "\n%v", flight.RouteOf(flight.AirportName(rec.Origin), flight.AirportName(rec.Destination)))
	}
	fmt.Fprintf(&b, "\nAltitude: %v", rec.AltitudeText())

	switch {
	case rec.IsHelicopter:
		b.WriteString("\nHelicopter!")
	case rec.IsPrivateJet:
		b.WriteString("\nLOOK! IT'S THE 1%!")
	}
	if rec.IsCanadianOrigin || rec.IsCanadianAircraft {
		b.WriteString("\n🇨🇦")
	}
	return b.String()
}

// HandleUpdates receives bot events, and calls callback with received messages
// old bot events are replayed on calling the method, except when onlyNewUpdates is true
func (t *Bot) HandleUpdates(callback func(msg string), onlyNewUpdates bool) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates, err := t.api.GetUpdatesChan(u)
	if err != nil {
		return err
	}
	if onlyNewUpdates {
		updates.Clear()
	}

	for {
		select {
		case <-t.ctx.Done():
			t.api.StopReceivingUpdates()
			return nil
		case u, ok := <-updates:
			if !ok {
				return nil
			}

			if u.Message != nil {
				callback(u.Message.Text)
			}
			if u.ChannelPost != nil {
				callback(u.ChannelPost.Text)
			}
		}
	}
}

// HandleCommands answers /status with the text status returns.
func (t *Bot) HandleCommands(status func() string) error {
	return t.HandleUpdates(func(msg string) {
		t.command(msg, status)
	}, true)
}

func (t *Bot) command(msg string, status func() string) {
	f := strings.Fields(msg)
	if len(f) == 0 {
		return
	}
	// "/status@botname" in groups
	cmd, _, _ := strings.Cut(f[0], "@")
	switch cmd {
	case "/status":
		if err := t.Send(status(), true); err != nil {
			logger.Warningf("status reply: %v", err)
		}
	}
}

// SelfMessage differentiates between messages sent to the bot
func (t *Bot) SelfMessage(txt string) bool {
	return t.api != nil && strings.Contains(txt, "@"+t.api.Self.UserName)
}
