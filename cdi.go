package carteira

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// FallbackAnnualRate is the annual CDI rate, in percent, used whenever the
// remote service cannot be reached. Rate acquisition never fails: callers
// always get a usable number.
const FallbackAnnualRate = 14.90

// cdiSeries is the Banco Central SGS series for the CDI annualized over 252
// business days.
const cdiSeries = 4389

// RateProvider supplies the current annual reference rate, in percent.
// Implementations must absorb their own failures and fall back to
// FallbackAnnualRate rather than surface an error.
type RateProvider interface {
	CurrentAnnualRate(ctx context.Context) float64
}

// SGSProvider fetches the CDI from the Banco Central's SGS open-data API.
type SGSProvider struct {
	client *http.Client
	addr   string
}

// NewSGSProvider returns a provider for the CDI series, with responses
// cached on disk for the day.
func NewSGSProvider() *SGSProvider {
	addr := fmt.Sprintf("https://api.bcb.gov.br/dados/serie/bcdata.sgs.%d/dados/ultimos/1?formato=json", cdiSeries)
	return &SGSProvider{client: daily(), addr: addr}
}

// CurrentAnnualRate returns the latest CDI observation, or
// FallbackAnnualRate when the service is unreachable or returns garbage.
func (p *SGSProvider) CurrentAnnualRate(ctx context.Context) float64 {
	rate, err := p.fetch(ctx)
	if err != nil {
		log.Printf("cdi fetch failed, using fallback %.2f%%: %v", FallbackAnnualRate, err)
		return FallbackAnnualRate
	}
	return rate
}

/*
	[
	  {
	    "data": "27/08/2026",
	    "valor": "14.90"
	  }
	]
*/
func (p *SGSProvider) fetch(ctx context.Context) (float64, error) {
	var jobj any
	if err := jwget(ctx, p.client, p.addr, &jobj); err != nil {
		return 0, fmt.Errorf("error in wget %q: %w", "CDI", err)
	}
	path := "$[-1:].valor"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing %q: %q %w", "CDI", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	switch v := jval.(type) {
	case float64:
		return v, nil
	case string:
		// the SGS API returns the value as a string, sometimes with a
		// comma decimal separator
		v = strings.ReplaceAll(v, ",", ".")
		rate, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot read CDI value %q: %w", v, err)
		}
		return rate, nil
	default:
		return 0, fmt.Errorf("cannot read CDI value: %q is neither a float nor a string (%v)", path, jval)
	}
}

// CachedRate wraps a provider with a time-to-live cache. Within the TTL
// every call returns the cached value; after expiry the next call refreshes
// it. Concurrent refreshes are last-writer-wins, which is acceptable since
// every writer observed a valid rate.
type CachedRate struct {
	mu       sync.Mutex
	provider RateProvider
	ttl      time.Duration
	rate     float64
	fetched  time.Time
}

// NewCachedRate wraps provider with the standard one-hour validity window.
func NewCachedRate(provider RateProvider) *CachedRate {
	return &CachedRate{provider: provider, ttl: time.Hour}
}

// CurrentAnnualRate returns the cached rate, refreshing it from the wrapped
// provider when the TTL has expired.
func (c *CachedRate) CurrentAnnualRate(ctx context.Context) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.fetched.IsZero() && time.Since(c.fetched) < c.ttl {
		return c.rate
	}
	c.rate = c.provider.CurrentAnnualRate(ctx)
	c.fetched = time.Now()
	return c.rate
}

var _ RateProvider = (*SGSProvider)(nil)
var _ RateProvider = (*CachedRate)(nil)
