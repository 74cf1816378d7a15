package efood

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pizzavfm/backend/internal/domain"
	"golang.org/x/time/rate"
)

// catalogAPIVersion is the catalog endpoint version the web client speaks.
const catalogAPIVersion = 3

// shopIDRegex extracts the trailing shop ID from a restaurant URL like
// "/delivery/volos/la-strada-7527410".
var shopIDRegex = regexp.MustCompile(`-(\d+)(?:\?|$)`)

// Client handles communication with the e-food catalog API.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	latitude       float64
	longitude      float64
	rateLimiter    *rate.Limiter
	sessionID      string
	installationID string
	debug          bool
}

// NewClient creates a new e-food API client for the given delivery location.
// Session and installation IDs are generated once per client, matching how
// the web frontend identifies itself.
func NewClient(baseURL string, latitude, longitude float64) *Client {
	// Polite crawling: at most one catalog request per second, small burst
	// so a handful of shops can be fetched back to back.
	limiter := rate.NewLimiter(rate.Limit(1), 3)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:        baseURL,
		latitude:       latitude,
		longitude:      longitude,
		rateLimiter:    limiter,
		sessionID:      uuid.NewString(),
		installationID: uuid.NewString(),
	}
}

// SetDebug enables or disables debug logging
func (c *Client) SetDebug(enabled bool) {
	c.debug = enabled
}

// doRequest executes an HTTP GET request with the browser-like headers the
// API expects.
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:146.0) Gecko/20100101 Firefox/146.0")
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Accept-Language", "el")
	req.Header.Set("X-core-platform", "web")
	req.Header.Set("X-core-version", "2.100.36")
	req.Header.Set("X-core-theme", "default:light")
	req.Header.Set("X-core-session-id", c.sessionID)
	req.Header.Set("X-core-installation-id", c.installationID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEfoodAPIFailure, err)
	}

	return resp, nil
}

// FetchCatalog fetches the full catalog document for one shop.
func (c *Client) FetchCatalog(ctx context.Context, shopID int) (*domain.CatalogDocument, error) {
	endpoint := fmt.Sprintf("%s/shops/catalog", c.baseURL)
	params := url.Values{}
	params.Add("shop_id", strconv.Itoa(shopID))
	params.Add("version", strconv.Itoa(catalogAPIVersion))
	params.Add("latitude", strconv.FormatFloat(c.latitude, 'f', -1, 64))
	params.Add("longitude", strconv.FormatFloat(c.longitude, 'f', -1, 64))
	params.Add("category_slug", "")

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	// Retry up to 3 times for transient failures
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			if c.debug {
				log.Printf("[EFOOD] Request error (attempt %d): %v", attempt, err)
			}
			lastErr = err
			time.Sleep(backoffDelay(attempt))
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			if resp.StatusCode == http.StatusNotFound {
				return nil, fmt.Errorf("%w: shop %d", domain.ErrShopNotFound, shopID)
			}
			if c.debug {
				log.Printf("[EFOOD] API error (attempt %d) - Status: %d", attempt, resp.StatusCode)
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrEfoodAPIFailure, resp.StatusCode)
			time.Sleep(backoffDelay(attempt))
			continue
		}

		doc, err := DecodeCatalog(body)
		if err != nil {
			return nil, fmt.Errorf("failed to decode catalog for shop %d: %w", shopID, err)
		}

		if c.debug {
			log.Printf("[EFOOD] Fetched catalog for shop %d (%d categories)",
				shopID, len(doc.Data.Menu.Categories))
		}
		return doc, nil
	}

	return nil, lastErr
}

// backoffDelay grows linearly with the attempt number: 500ms, 1s, 1.5s.
func backoffDelay(attempt int) time.Duration {
	return time.Duration(attempt) * 500 * time.Millisecond
}

// ExtractShopID pulls the numeric shop ID out of a restaurant URL.
func ExtractShopID(restaurantURL string) (int, bool) {
	match := shopIDRegex.FindStringSubmatch(restaurantURL)
	if match == nil {
		return 0, false
	}
	id, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return id, true
}
