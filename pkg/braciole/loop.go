package braciole

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/BrandonKowalski/braciole/pkg/braciole/feed"
	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
)

// Controller owns all input state and runs the poll loop. A single goroutine
// executes every tick start to finish (sample -> classify -> mutate ->
// render), so menu position, gesture anchor, multitap state and the text
// buffer need no locking. The data feeds run elsewhere and are only read
// here through their snapshots.
type Controller struct {
	cfg        Config
	menu       *Menu
	swipes     *SwipeDetector
	entry      *TextEntry
	dispatcher *Dispatcher
	search     *SearchIndex
	matches    []string

	touch   TouchSource
	weather *feed.WeatherService
	crypto  *feed.CryptoService

	text   *internal.TextCache
	icons  *internal.IconCache
	logger *slog.Logger
}

// NewController assembles the input pipeline. weather and crypto may be nil;
// the matching screens then show their placeholder state.
func NewController(cfg Config, touch TouchSource, weather *feed.WeatherService, crypto *feed.CryptoService) *Controller {
	menu := NewMenu()
	entry := NewTextEntry()

	c := &Controller{
		cfg:     cfg,
		menu:    menu,
		swipes:  NewSwipeDetector(menu),
		entry:   entry,
		search:  NewSearchIndex(),
		touch:   touch,
		weather: weather,
		crypto:  crypto,
		text:    internal.NewTextCache(),
		icons:   internal.NewIconCache(int(weatherIconSize)),
		logger:  internal.GetLogger(),
	}
	c.dispatcher = NewDispatcher(c.swipes, menu, entry)

	entry.OnSubmit = func(text string) {
		c.matches = c.search.Rank(text, 3)
		c.logger.Info("search submitted", "query", text, "matches", len(c.matches))
	}

	return c
}

// Run starts the data feeds and drives the poll loop until ctx is cancelled
// or the display goes away. Must run on the thread that called Init.
func (c *Controller) Run(ctx context.Context) error {
	if c.weather != nil {
		go c.weather.Run(ctx)
	}
	if c.crypto != nil {
		go c.crypto.Run(ctx)
	}

	ticker := time.NewTicker(constants.TickInterval)
	defer ticker.Stop()

	lastScreen := Screen(-1)
	lastSub := -1
	lastClock := ""

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		now := time.Now()

		sample, ok, err := c.touch.Poll()
		if err != nil {
			if errors.Is(err, internal.ErrDisplayClosed) {
				c.logger.Info("display closed, shutting down")
				return nil
			}
			// Driver failures degrade to "no contact"; the loop
			// never dies because a touch read glitched.
			c.logger.Warn("touch poll failed", "error", err)
			ok = false
		}

		var current *TouchSample
		if ok {
			s := sample
			current = &s
		}

		redraw := c.dispatcher.Tick(current, c.menu.CurrentScreen(), now)

		if c.menu.CurrentScreen() != lastScreen || c.menu.Sub() != lastSub {
			redraw = true
		}
		if c.menu.CurrentScreen() == ScreenTime {
			if clock := now.Format("15:04:05"); clock != lastClock {
				lastClock = clock
				redraw = true
			}
		}

		if redraw {
			c.render(now)
			lastScreen = c.menu.CurrentScreen()
			lastSub = c.menu.Sub()
		}
	}
}

func (c *Controller) weatherSnapshot() feed.WeatherSnapshot {
	if c.weather == nil {
		return feed.PlaceholderWeather()
	}
	return c.weather.Current()
}

func (c *Controller) cryptoSnapshot() feed.CryptoSnapshot {
	if c.crypto == nil {
		return feed.PlaceholderCrypto(c.cfg.Feeds.CryptoPairs)
	}
	return c.crypto.Current()
}

// Menu exposes the navigation position, mainly for tests and embedders.
func (c *Controller) Menu() *Menu {
	return c.menu
}

// Entry exposes the text entry state, mainly for tests and embedders.
func (c *Controller) Entry() *TextEntry {
	return c.entry
}
