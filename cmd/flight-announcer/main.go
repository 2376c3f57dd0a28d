package main

import (
	"context"
	"os"
	"time"

	"code.sztanpet.net/zvpsz/flight-announcer/internal/board"
	"code.sztanpet.net/zvpsz/flight-announcer/internal/config"
	"code.sztanpet.net/zvpsz/flight-announcer/internal/display"
	"code.sztanpet.net/zvpsz/flight-announcer/internal/source"
	"code.sztanpet.net/zvpsz/flight-announcer/internal/status"
	"code.sztanpet.net/zvpsz/flight-announcer/internal/storage"
	"code.sztanpet.net/zvpsz/flight-announcer/internal/telegram"
	"github.com/juju/loggo"
	"golang.org/x/sync/errgroup"
)

type app struct {
	ctx     context.Context
	exit    context.CancelFunc
	cfg     *config.Config
	bot     *telegram.Bot
	status  *status.Status
	storage *storage.Storage
	source  *source.Client

	sink      display.Sink
	closeSink func()
	quit      <-chan struct{}
	board     *board.Board
	feed      board.Feed
}

var logger = loggo.GetLogger("flight-announcer")
var statusDurr = 5 * time.Minute

func main() {
	cfg := config.Get()
	ctx, exit := context.WithCancel(context.Background())
	a := &app{
		ctx:  ctx,
		exit: exit,
		cfg:  cfg,
	}
	// logging sends messages to telegram, so it depends on it
	a.setupTelegram()
	a.setupLogging()
	a.status = status.New(cfg.DeviceName)

	a.handleSignals()

	// depends on statePath
	a.setupStorage()

	a.setupSource()
	a.setupScreen()
	a.setupCommands()

	if a.ctx.Err() != nil {
		os.Exit(1)
	}
	logger.Infof("started on %v, watching RWY %v at %v", cfg.DeviceName, cfg.WatchedRunway, cfg.Airport)

	g, gctx := errgroup.WithContext(a.ctx)
	p := newPoller(a.source, &a.feed, cfg)
	p.onDetect = a.announce
	g.Go(func() error { return p.loop(gctx) })
	g.Go(func() error { return a.renderLoop(gctx) })
	g.Go(func() error { return a.statusLoop(gctx) })
	if a.quit != nil {
		g.Go(func() error {
			select {
			case <-a.quit:
				logger.Infof("quit pressed, exiting")
				a.exit()
			case <-gctx.Done():
			}
			return nil
		})
	}

	// canceling the context is the normal way to exit
	err := g.Wait()
	a.shutdown()
	if err != nil && err != context.Canceled {
		logger.Errorf("exiting on error: %v", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func (a *app) shutdown() {
	if err := a.board.ClearDisplay(); err != nil {
		logger.Warningf("clearing display: %v", err)
	}
	if a.closeSink != nil {
		a.closeSink()
	}
	if a.storage != nil {
		_ = a.storage.Close()
	}
	// let the log writer forward the last lines
	time.Sleep(250 * time.Millisecond)
}
