// Package scraper retrieves public comments from social-media post URLs.
// Each supported platform is backed by an Apify actor invoked through the
// shared webclient; without an API token every platform falls back to
// deterministic mock comments so downstream processing stays exercisable.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/seolens/seolens/internal/logging"
	"github.com/seolens/seolens/internal/webclient"
)

var (
	// ErrInvalidURL marks a post URL that is not absolute http(s).
	ErrInvalidURL = errors.New("invalid post url")

	// ErrUnsupportedPlatform marks a URL whose host matches no scraper.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)

// Comment is one scraped social-media comment.
type Comment struct {
	Text      string `json:"text"`
	Author    string `json:"author"`
	Timestamp string `json:"timestamp"`
	Platform  string `json:"platform"`
	CommentID string `json:"comment_id,omitempty"`
	Likes     int    `json:"likes"`
}

// Result is the scrape outcome for one post URL.
type Result struct {
	Comments      []Comment `json:"comments"`
	Platform      string    `json:"platform"`
	URL           string    `json:"url"`
	TotalComments int       `json:"total_comments"`
}

// Texts extracts the comment bodies, the input shape the sentiment
// classifier consumes.
func (r *Result) Texts() []string {
	texts := make([]string, 0, len(r.Comments))
	for _, c := range r.Comments {
		texts = append(texts, c.Text)
	}
	return texts
}

// platformScraper fetches comments for one platform's post URLs.
type platformScraper interface {
	// Name is the lowercase platform identifier.
	Name() string

	// Matches reports whether the URL belongs to this platform.
	Matches(u *url.URL) bool

	// Comments fetches up to max comments for the post.
	Comments(ctx context.Context, postURL string, max int) ([]Comment, error)
}

// Scraper dispatches post URLs to the matching platform scraper.
type Scraper struct {
	cfg       *Config
	platforms []platformScraper
	logger    logging.Logger
}

func New(cfg *Config, wc webclient.WebClient, logger logging.Logger) *Scraper {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	logger = logger.With(logging.Field{Key: "component", Value: "scraper"})

	return &Scraper{
		cfg: cfg,
		platforms: []platformScraper{
			newTikTokScraper(cfg.APIToken, wc, logger),
			newInstagramScraper(cfg.APIToken, wc, logger),
			newYouTubeScraper(cfg.APIToken, wc, logger),
		},
		logger: logger,
	}
}

// Scrape validates the post URL, picks the platform scraper by host, and
// fetches up to MaxComments comments.
func (s *Scraper) Scrape(ctx context.Context, postURL string) (*Result, error) {
	u, err := url.Parse(postURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, postURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: scheme %q", ErrInvalidURL, u.Scheme)
	}

	for _, p := range s.platforms {
		if !p.Matches(u) {
			continue
		}
		comments, err := p.Comments(ctx, postURL, s.cfg.MaxComments)
		if err != nil {
			return nil, fmt.Errorf("fetch %s comments: %w", p.Name(), err)
		}
		s.logger.Info("scrape finished",
			logging.Field{Key: "platform", Value: p.Name()},
			logging.Field{Key: "url", Value: postURL},
			logging.Field{Key: "comments", Value: len(comments)})
		return &Result{
			Comments:      comments,
			Platform:      p.Name(),
			URL:           postURL,
			TotalComments: len(comments),
		}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, u.Host)
}

// mockComments is the tokenless fallback: a deterministic set per platform so
// the sentiment pipeline always has input.
func mockComments(platform, text string, likesBase int) []Comment {
	now := time.Now().Format(time.RFC3339)
	comments := make([]Comment, 3)
	for i := range comments {
		comments[i] = Comment{
			Text:      text,
			Author:    fmt.Sprintf("user%d", i+1),
			Timestamp: now,
			Platform:  platform,
			CommentID: fmt.Sprintf("mock_%d", i),
			Likes:     likesBase + i,
		}
	}
	return comments
}
