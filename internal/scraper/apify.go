package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"

	"github.com/seolens/seolens/internal/logging"
	"github.com/seolens/seolens/internal/webclient"
)

const apifyBaseURL = "https://api.apify.com/v2"

// apifyClient calls the Apify run-sync endpoint, which runs an actor and
// returns its default dataset items in one request. Each scraper owns a
// limiter matching the platform's documented rate budget.
type apifyClient struct {
	token   string
	wc      webclient.WebClient
	limiter *rate.Limiter
	logger  logging.Logger
}

func newApifyClient(token string, wc webclient.WebClient, limiter *rate.Limiter, logger logging.Logger) *apifyClient {
	return &apifyClient{token: token, wc: wc, limiter: limiter, logger: logger}
}

// runActor executes the actor synchronously with the given input and decodes
// the dataset items. Blocks on the rate limiter first.
func (c *apifyClient) runActor(ctx context.Context, actorID string, input map[string]any) ([]map[string]any, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("marshal actor input: %w", err)
	}

	endpoint := fmt.Sprintf("%s/acts/%s/run-sync-get-dataset-items?token=%s",
		apifyBaseURL, actorID, url.QueryEscape(c.token))

	headers := make(http.Header)
	headers.Set("Content-Type", "application/json")

	resp, err := c.wc.Do(ctx, &webclient.Request{
		Method:  http.MethodPost,
		URL:     endpoint,
		Headers: headers,
		Body:    body,
	})
	if err != nil {
		return nil, fmt.Errorf("call actor %s: %w", actorID, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("actor %s returned status %d", actorID, resp.StatusCode)
	}

	var items []map[string]any
	if err := json.Unmarshal(resp.Body, &items); err != nil {
		return nil, fmt.Errorf("decode actor %s dataset: %w", actorID, err)
	}

	c.logger.Debug("actor run finished",
		logging.Field{Key: "actor", Value: actorID},
		logging.Field{Key: "items", Value: len(items)})

	return items, nil
}

// Typed accessors over the loosely-typed dataset items.

func itemString(item map[string]any, key, fallback string) string {
	if v, ok := item[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func itemInt(item map[string]any, key string) int {
	if v, ok := item[key].(float64); ok {
		return int(v)
	}
	return 0
}
