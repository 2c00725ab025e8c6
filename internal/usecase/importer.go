package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"LocalNewsDesk/internal/domain"
	"LocalNewsDesk/internal/ports"
)

// ImportReport counts the outcomes of one import run.
type ImportReport struct {
	Fetched   int
	Published int
	Rejected  int
	Failed    int
}

// ImporterDeps wires the import run collaborators.
type ImporterDeps struct {
	Source   ports.SubmissionSource
	Pipeline *Pipeline
	Notifier ports.Notifier
	Logger   *slog.Logger
	NewID    func() string
}

// Importer pulls drafts from configured community sources, routes each one
// through the publication pipeline, and announces the published batch.
type Importer struct {
	source   ports.SubmissionSource
	pipeline *Pipeline
	notifier ports.Notifier
	logger   *slog.Logger
	newID    func() string
}

// NewImporter constructs the import orchestration.
func NewImporter(deps ImporterDeps) *Importer {
	imp := &Importer{
		source:   deps.Source,
		pipeline: deps.Pipeline,
		notifier: deps.Notifier,
		logger:   deps.Logger,
		newID:    deps.NewID,
	}
	if imp.logger == nil {
		imp.logger = slog.Default()
	}
	if imp.newID == nil {
		imp.newID = imp.pipeline.newID
	}
	return imp
}

// Run executes one import cycle. A failure on a single draft does not abort
// the run; it is counted and logged.
func (i *Importer) Run(ctx context.Context) (ImportReport, error) {
	var report ImportReport

	drafts, err := i.source.FetchDrafts(ctx)
	if err != nil {
		return report, fmt.Errorf("fetch drafts: %w", err)
	}
	report.Fetched = len(drafts)

	var published []domain.PublishedItem
	for _, draft := range drafts {
		outcome, err := i.pipeline.Submit(ctx, draft, i.newID())
		if err != nil {
			report.Failed++
			var inconsistent *InconsistentStateError
			if errors.As(err, &inconsistent) {
				i.logger.Error("import left submission unpublished", "submission", inconsistent.SubmissionID, "error", err)
			} else {
				i.logger.Error("import submission failed", "title", draft.Title, "error", err)
			}
			continue
		}
		if outcome.Rejected {
			report.Rejected++
			continue
		}
		report.Published++
		published = append(published, *outcome.Published)
	}

	if len(published) > 0 && i.notifier != nil {
		if err := i.notifier.PublishDigest(ctx, buildDigest(published)); err != nil {
			i.logger.Warn("digest notification failed", "error", err)
		}
	}

	i.logger.Info("import run finished",
		"fetched", report.Fetched,
		"published", report.Published,
		"rejected", report.Rejected,
		"failed", report.Failed)
	return report, nil
}

func buildDigest(items []domain.PublishedItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d new local stories published:\n\n", len(items))
	for _, item := range items {
		fmt.Fprintf(&b, "- %s (%s, %s)\n  %s\n", item.EditedTitle, item.City, item.Category, item.EditedSummary)
	}
	return b.String()
}
