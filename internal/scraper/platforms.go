package scraper

import (
	"context"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"github.com/seolens/seolens/internal/logging"
	"github.com/seolens/seolens/internal/webclient"
)

// Apify actor IDs per platform.
const (
	tiktokActorID    = "BDec00yAmCm1QbMEI"
	instagramActorID = "SbK00X0JYCPblD2wp"
	youtubeActorID   = "p7UMdpQnjKmmpR21D"
)

func hostMatches(u *url.URL, domain string) bool {
	host := strings.ToLower(u.Hostname())
	return host == domain || strings.HasSuffix(host, "."+domain)
}

type tiktokScraper struct {
	client *apifyClient
	token  string
	logger logging.Logger
}

// TikTok allows 300 requests per 15 minutes.
func newTikTokScraper(token string, wc webclient.WebClient, logger logging.Logger) *tiktokScraper {
	limiter := rate.NewLimiter(rate.Limit(300.0/900.0), 1)
	return &tiktokScraper{
		client: newApifyClient(token, wc, limiter, logger),
		token:  token,
		logger: logger,
	}
}

func (s *tiktokScraper) Name() string { return "tiktok" }

func (s *tiktokScraper) Matches(u *url.URL) bool { return hostMatches(u, "tiktok.com") }

func (s *tiktokScraper) Comments(ctx context.Context, postURL string, max int) ([]Comment, error) {
	if s.token == "" {
		s.logger.Warn("no api token configured, returning mock comments",
			logging.Field{Key: "platform", Value: s.Name()})
		return mockComments("TikTok", "Great post! Thanks for sharing.", 5), nil
	}

	items, err := s.client.runActor(ctx, tiktokActorID, map[string]any{
		"postURLs":              []string{postURL},
		"commentsPerPost":       max,
		"maxRepliesPerComment":  0,
		"resultsPerPage":        100,
		"profileScrapeSections": []string{"videos"},
		"profileSorting":        "latest",
		"excludePinnedPosts":    false,
	})
	if err != nil {
		return nil, err
	}

	comments := make([]Comment, 0, len(items))
	for _, item := range items {
		comments = append(comments, Comment{
			Text:      itemString(item, "text", ""),
			Author:    itemString(item, "uniqueId", "Unknown"),
			Timestamp: itemString(item, "createTimeISO", ""),
			Platform:  "TikTok",
			CommentID: itemString(item, "cid", ""),
			Likes:     itemInt(item, "diggCount"),
		})
	}
	return comments, nil
}

type instagramScraper struct {
	client *apifyClient
	token  string
	logger logging.Logger
}

// Instagram allows 200 requests per hour.
func newInstagramScraper(token string, wc webclient.WebClient, logger logging.Logger) *instagramScraper {
	limiter := rate.NewLimiter(rate.Limit(200.0/3600.0), 1)
	return &instagramScraper{
		client: newApifyClient(token, wc, limiter, logger),
		token:  token,
		logger: logger,
	}
}

func (s *instagramScraper) Name() string { return "instagram" }

func (s *instagramScraper) Matches(u *url.URL) bool { return hostMatches(u, "instagram.com") }

func (s *instagramScraper) Comments(ctx context.Context, postURL string, max int) ([]Comment, error) {
	if s.token == "" {
		s.logger.Warn("no api token configured, returning mock comments",
			logging.Field{Key: "platform", Value: s.Name()})
		return mockComments("Instagram", "Amazing photo! Love it ❤️", 10), nil
	}

	items, err := s.client.runActor(ctx, instagramActorID, map[string]any{
		"directUrls":   []string{postURL},
		"resultsLimit": max,
	})
	if err != nil {
		return nil, err
	}

	comments := make([]Comment, 0, len(items))
	for _, item := range items {
		comments = append(comments, Comment{
			Text:      itemString(item, "text", ""),
			Author:    itemString(item, "ownerUsername", "Unknown"),
			Timestamp: itemString(item, "timestamp", ""),
			Platform:  "Instagram",
			CommentID: itemString(item, "id", ""),
			Likes:     itemInt(item, "likesCount"),
		})
	}
	return comments, nil
}

type youtubeScraper struct {
	client *apifyClient
	token  string
	logger logging.Logger
}

// YouTube allows 200 requests per hour.
func newYouTubeScraper(token string, wc webclient.WebClient, logger logging.Logger) *youtubeScraper {
	limiter := rate.NewLimiter(rate.Limit(200.0/3600.0), 1)
	return &youtubeScraper{
		client: newApifyClient(token, wc, limiter, logger),
		token:  token,
		logger: logger,
	}
}

func (s *youtubeScraper) Name() string { return "youtube" }

func (s *youtubeScraper) Matches(u *url.URL) bool {
	return hostMatches(u, "youtube.com") || hostMatches(u, "youtu.be")
}

func (s *youtubeScraper) Comments(ctx context.Context, postURL string, max int) ([]Comment, error) {
	if s.token == "" {
		s.logger.Warn("no api token configured, returning mock comments",
			logging.Field{Key: "platform", Value: s.Name()})
		return mockComments("YouTube", "Interesting video! Thanks for sharing your thoughts.", 3), nil
	}

	items, err := s.client.runActor(ctx, youtubeActorID, map[string]any{
		"startUrls":      []map[string]string{{"url": postURL}},
		"maxComments":    max,
		"commentsSortBy": "1",
	})
	if err != nil {
		return nil, err
	}

	comments := make([]Comment, 0, len(items))
	for _, item := range items {
		comments = append(comments, Comment{
			Text:      itemString(item, "comment", ""),
			Author:    itemString(item, "author", "Unknown"),
			Timestamp: itemString(item, "publishedTimeText", ""),
			Platform:  "YouTube",
			CommentID: itemString(item, "cid", ""),
			Likes:     itemInt(item, "voteCount"),
		})
	}
	return comments, nil
}
