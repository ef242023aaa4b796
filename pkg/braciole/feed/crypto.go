package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/atomic"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const coinbaseBaseURL = "https://api.coinbase.com"

// CryptoQuote is one display-ready spot price.
type CryptoQuote struct {
	Base    string // "BTC"
	Display string // "€67,123.45"
}

// CryptoSnapshot holds the quotes in configured pair order.
type CryptoSnapshot struct {
	Quotes []CryptoQuote
}

// PlaceholderCrypto is shown until the first fetch completes.
func PlaceholderCrypto(pairs []string) CryptoSnapshot {
	return fillCrypto(pairs, "Loading")
}

func errorCrypto(pairs []string) CryptoSnapshot {
	return fillCrypto(pairs, "Err")
}

func fillCrypto(pairs []string, display string) CryptoSnapshot {
	quotes := make([]CryptoQuote, len(pairs))
	for i, pair := range pairs {
		quotes[i] = CryptoQuote{Base: pairBase(pair), Display: display}
	}
	return CryptoSnapshot{Quotes: quotes}
}

func pairBase(pair string) string {
	if i := strings.IndexByte(pair, '-'); i > 0 {
		return pair[:i]
	}
	return pair
}

func pairQuote(pair string) string {
	if i := strings.IndexByte(pair, '-'); i >= 0 && i+1 < len(pair) {
		return pair[i+1:]
	}
	return "EUR"
}

type coinbaseSpotResponse struct {
	Data struct {
		Base     string `json:"base"`
		Currency string `json:"currency"`
		Amount   string `json:"amount"`
	} `json:"data"`
}

// CryptoClient fetches Coinbase spot prices for a fixed set of pairs.
type CryptoClient struct {
	httpClient *http.Client
	baseURL    string
	pairs      []string
	printer    *message.Printer
}

// NewCryptoClient creates a client for pairs like "BTC-EUR".
func NewCryptoClient(pairs []string) *CryptoClient {
	return &CryptoClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    coinbaseBaseURL,
		pairs:      pairs,
		printer:    message.NewPrinter(language.English),
	}
}

// Fetch retrieves all configured pairs. One failing pair fails the whole
// fetch; the caller keeps the previous snapshot.
func (c *CryptoClient) Fetch(ctx context.Context) (CryptoSnapshot, error) {
	quotes := make([]CryptoQuote, 0, len(c.pairs))
	for _, pair := range c.pairs {
		quote, err := c.fetchPair(ctx, pair)
		if err != nil {
			return CryptoSnapshot{}, fmt.Errorf("%s: %w", pair, err)
		}
		quotes = append(quotes, quote)
	}
	return CryptoSnapshot{Quotes: quotes}, nil
}

func (c *CryptoClient) fetchPair(ctx context.Context, pair string) (CryptoQuote, error) {
	url := fmt.Sprintf("%s/v2/prices/%s/spot", c.baseURL, pair)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return CryptoQuote{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return CryptoQuote{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return CryptoQuote{}, fmt.Errorf("coinbase: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return CryptoQuote{}, err
	}

	return c.parseQuote(pair, body)
}

func (c *CryptoClient) parseQuote(pair string, body []byte) (CryptoQuote, error) {
	var parsed coinbaseSpotResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return CryptoQuote{}, fmt.Errorf("coinbase: %w", err)
	}

	amount, err := strconv.ParseFloat(parsed.Data.Amount, 64)
	if err != nil {
		return CryptoQuote{}, fmt.Errorf("coinbase: amount %q: %w", parsed.Data.Amount, err)
	}

	return CryptoQuote{
		Base:    pairBase(pair),
		Display: c.formatAmount(pairQuote(pair), amount),
	}, nil
}

// formatAmount renders an amount with its currency symbol ("€67,123.45").
// Unknown currency codes fall back to a plain two-decimal string.
func (c *CryptoClient) formatAmount(code string, amount float64) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("%s %.2f", code, amount)
	}
	return c.printer.Sprint(currency.NarrowSymbol(unit.Amount(amount)))
}

// CryptoService refreshes the spot prices on an interval and holds the
// latest snapshot for the render loop.
type CryptoService struct {
	client   *CryptoClient
	interval time.Duration
	logger   *slog.Logger
	snapshot atomic.Value // CryptoSnapshot
	fetched  atomic.Bool
}

// NewCryptoService wraps a client with periodic refresh.
func NewCryptoService(client *CryptoClient, interval time.Duration, logger *slog.Logger) *CryptoService {
	s := &CryptoService{
		client:   client,
		interval: interval,
		logger:   logger,
	}
	s.snapshot.Store(PlaceholderCrypto(client.pairs))
	return s
}

// Current returns the latest snapshot. Never blocks.
func (s *CryptoService) Current() CryptoSnapshot {
	return s.snapshot.Load().(CryptoSnapshot)
}

// Run fetches immediately and then on every interval until ctx is done.
// Call in its own goroutine.
func (s *CryptoService) Run(ctx context.Context) {
	s.refresh(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

func (s *CryptoService) refresh(ctx context.Context) {
	snapshot, err := s.client.Fetch(ctx)
	if err != nil {
		s.logger.Warn("crypto fetch failed", "error", err)
		if !s.fetched.Load() {
			s.snapshot.Store(errorCrypto(s.client.pairs))
		}
		return
	}
	s.fetched.Store(true)
	s.snapshot.Store(snapshot)
	s.logger.Debug("crypto updated", "pairs", len(snapshot.Quotes))
}
