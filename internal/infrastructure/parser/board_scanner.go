package parser

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"LocalNewsDesk/internal/domain"
	"LocalNewsDesk/internal/scanner"
)

// BoardScanner crawls community notice-board pages and extracts draft
// submissions. Expected markup is one div.notice per entry with
// .notice-title, .notice-body, .notice-author, .notice-phone children and an
// optional data-category attribute.
type BoardScanner struct {
	client *http.Client
	logger *slog.Logger
}

// NewBoardScanner wires an HTTP client; nil defaults to a 20s timeout client.
func NewBoardScanner(client *http.Client, logger *slog.Logger) *BoardScanner {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	return &BoardScanner{client: client, logger: logger}
}

// Name identifies the strategy inside the registry.
func (b *BoardScanner) Name() string {
	return "board"
}

// Scan walks through each board URL and returns the drafts found there.
func (b *BoardScanner) Scan(ctx context.Context, req scanner.Request) ([]domain.Draft, error) {
	if len(req.Boards) == 0 {
		return nil, fmt.Errorf("no boards provided for site %s", req.SiteName)
	}

	var results []domain.Draft
	for _, board := range req.Boards {
		doc, err := b.fetchDocument(ctx, board.URL)
		if err != nil {
			return nil, fmt.Errorf("board %s: %w", board.City, err)
		}

		drafts := extractDrafts(doc, board.City)
		if b.logger != nil {
			b.logger.Debug("board scanned", "city", board.City, "drafts", len(drafts))
		}
		results = append(results, drafts...)
	}

	return results, nil
}

func (b *BoardScanner) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "LocalNewsDesk/1.0")

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("board returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	return doc, nil
}

func extractDrafts(doc *goquery.Document, city string) []domain.Draft {
	var drafts []domain.Draft

	doc.Find("div.notice").Each(func(_ int, sel *goquery.Selection) {
		title := strings.TrimSpace(sel.Find(".notice-title").First().Text())
		body := strings.TrimSpace(sel.Find(".notice-body").First().Text())
		if title == "" || body == "" {
			return
		}

		category := domain.CategoryOther
		if raw, exists := sel.Attr("data-category"); exists {
			if parsed, err := domain.ParseCategory(strings.TrimSpace(raw)); err == nil {
				category = parsed
			}
		}

		drafts = append(drafts, domain.Draft{
			Title:          title,
			Description:    body,
			City:           city,
			Category:       category,
			PublisherName:  strings.TrimSpace(sel.Find(".notice-author").First().Text()),
			PublisherPhone: strings.TrimSpace(sel.Find(".notice-phone").First().Text()),
		})
	})

	return drafts
}
