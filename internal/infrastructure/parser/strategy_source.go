package parser

import (
	"context"
	"fmt"
	"log/slog"

	"LocalNewsDesk/internal/config"
	"LocalNewsDesk/internal/domain"
	"LocalNewsDesk/internal/ports"
	"LocalNewsDesk/internal/scanner"
)

// StrategySource implements SubmissionSource via registered scanner strategies.
type StrategySource struct {
	registry *scanner.Registry
	sites    []config.SiteConfig
	logger   *slog.Logger
}

var _ ports.SubmissionSource = (*StrategySource)(nil)

// NewStrategySource wires scanner registry with config-defined sites.
func NewStrategySource(reg *scanner.Registry, sites []config.SiteConfig, log *slog.Logger) *StrategySource {
	return &StrategySource{
		registry: reg,
		sites:    sites,
		logger:   log,
	}
}

// FetchDrafts iterates over configured sites and executes their scanners.
func (s *StrategySource) FetchDrafts(ctx context.Context) ([]domain.Draft, error) {
	if s.registry == nil {
		return nil, fmt.Errorf("scanner registry is not configured")
	}

	s.debug("fetch drafts", "sites", len(s.sites))

	var aggregated []domain.Draft
	for _, site := range s.sites {
		s.debug("process site", "site", site.Name, "scanner", site.Scanner, "boards", len(site.Boards))
		strategy, err := s.registry.Resolve(site.Scanner)
		if err != nil {
			return nil, fmt.Errorf("site %s: %w", site.Name, err)
		}

		req := scanner.Request{
			SiteName: site.Name,
			Options:  site.Options,
			Boards:   toScannerBoards(site.Boards),
		}

		results, err := strategy.Scan(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("scan site %s: %w", site.Name, err)
		}

		s.debug("site produced drafts", "site", site.Name, "count", len(results))
		aggregated = append(aggregated, results...)
	}

	s.debug("strategy source done", "total_drafts", len(aggregated))
	return aggregated, nil
}

func toScannerBoards(cfg []config.BoardConfig) []scanner.Board {
	boards := make([]scanner.Board, 0, len(cfg))
	for _, board := range cfg {
		boards = append(boards, scanner.Board{
			City: board.City,
			URL:  board.URL,
		})
	}
	return boards
}

func (s *StrategySource) debug(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
