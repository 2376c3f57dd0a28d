package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"code.sztanpet.net/zvpsz/flight-announcer/internal/board"
	"code.sztanpet.net/zvpsz/flight-announcer/internal/display"
	"code.sztanpet.net/zvpsz/flight-announcer/internal/logwriter"
	"code.sztanpet.net/zvpsz/flight-announcer/internal/source"
	"code.sztanpet.net/zvpsz/flight-announcer/internal/storage"
	"code.sztanpet.net/zvpsz/flight-announcer/internal/telegram"
)

func (a *app) handleSignals() {
	if a.ctx.Err() != nil {
		return
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		s := <-c
		// exit unconditionally on any signal
		logger.Warningf("Got signal: %s, exiting cleanly", s)
		a.exit()
	}()
}

func (a *app) setupLogging() {
	if a.ctx.Err() != nil {
		return
	}

	var n logwriter.Notifier
	if a.bot != nil {
		n = a.bot
	}
	err := logwriter.Setup(n, a.cfg)
	if err != nil {
		panic("logwriter setup failed, impossible: " + err.Error())
	}
}

func (a *app) setupTelegram() {
	if a.ctx.Err() != nil || !a.cfg.TelegramEnabled() {
		return
	}

	bot, err := telegram.New(a.ctx, a.cfg.TelegramToken, a.cfg.TelegramChannelID)
	if err != nil {
		// logging is not set up yet, the default writer prints to stderr
		logger.Errorf("telegram disabled: %v", err)
		return
	}
	a.bot = bot
	_ = a.bot.Send("FA-start @ "+time.Now().Format(time.RFC3339), true)
}

func (a *app) setupCommands() {
	if a.ctx.Err() != nil || a.bot == nil {
		return
	}

	go func() {
		if err := a.bot.HandleCommands(a.statusReport); err != nil {
			logger.Errorf("HandleCommands error: %v", err)
		}
	}()
}

func (a *app) setupStorage() {
	if a.ctx.Err() != nil {
		return
	}
	if !a.cfg.StatsEnabled() {
		logger.Infof("no DATABASE_DSN, sightings are not recorded")
		return
	}

	storage, err := storage.New(a.ctx, a.cfg)
	if err != nil {
		logger.Criticalf("failed to initialize storage: %v", err)
		os.Exit(1)
	}
	if err := storage.TestConnection(); err != nil {
		// sightings wait on disk until the database is back
		logger.Warningf("database unreachable: %v", err)
	}

	a.storage = storage
}

func (a *app) setupSource() {
	if a.ctx.Err() != nil {
		return
	}

	a.source = source.New(a.cfg)
}

func (a *app) setupScreen() {
	if a.ctx.Err() != nil {
		return
	}

	w, h := a.cfg.Width(), a.cfg.Height()
	switch a.cfg.Sink {
	case "ssd1306":
		s, err := display.NewSSD1306Sink(w, h)
		if err != nil {
			// the sink handles its own logging, just exit
			a.exit()
			return
		}
		a.sink = s
		a.closeSink = func() { _ = s.Close() }
	case "terminal":
		s, err := display.NewTerminalSink(w, h)
		if err != nil {
			logger.Criticalf("terminal sink: %v", err)
			a.exit()
			return
		}
		a.sink = s
		a.quit = s.Quit()
		a.closeSink = func() { _ = s.Close() }
	default:
		a.sink = display.NewMemorySink(w, h)
	}

	theme, ok := board.ThemeByName(a.cfg.Theme, a.cfg.Border)
	if !ok {
		panic("config let an unknown theme through: " + a.cfg.Theme)
	}
	bc := board.DefaultConfig(w, h, theme)
	bc.Airport = a.cfg.Airport
	bc.WatchedRunway = a.cfg.WatchedRunway

	a.board = board.New(bc, display.NewScreen(a.sink), board.SystemClock{})
	if err := a.board.ClearDisplay(); err != nil {
		logger.Warningf("clearing display: %v", err)
	}
	logger.Infof("%v sink ready, %vx%v at %v fps", a.cfg.Sink, w, h, a.cfg.FrameRate)
}
