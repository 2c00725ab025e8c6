package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"LocalNewsDesk/internal/app"
	"LocalNewsDesk/internal/config"
	"LocalNewsDesk/internal/domain"
	"LocalNewsDesk/internal/logging"
	"LocalNewsDesk/internal/usecase"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "newsdesk",
		Short:         "Community news submission and publication pipeline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newSubmitCmd(),
		newFeedCmd(),
		newBookmarkCmd(),
		newStatsCmd(),
		newImportCmd(),
		newRunCmd(),
	)
	return root
}

func buildApp() (*app.Application, error) {
	cfg := config.Load()
	return app.New(cfg, logging.New(cfg.Logging.Level))
}

func newSubmitCmd() *cobra.Command {
	var draft domain.Draft
	var category string

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a local news item for moderation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := domain.ParseCategory(category)
			if err != nil {
				return fmt.Errorf("%w (valid: %s)", err, joinCategories())
			}
			draft.Category = parsed

			application, err := buildApp()
			if err != nil {
				return err
			}
			defer application.Close()

			outcome, err := application.Pipeline.Submit(cmd.Context(), draft, uuid.NewString())
			if err != nil {
				return err
			}
			if outcome.Rejected {
				fmt.Printf("Rejected: %s\n", outcome.Reason)
				return nil
			}
			fmt.Printf("Published: %s\n%s\n", outcome.Published.EditedTitle, outcome.Published.EditedSummary)
			return nil
		},
	}

	cmd.Flags().StringVar(&draft.Title, "title", "", "news title")
	cmd.Flags().StringVar(&draft.Description, "description", "", "what happened")
	cmd.Flags().StringVar(&draft.City, "city", "", "city the news is about")
	cmd.Flags().StringVar(&category, "category", string(domain.CategoryOther), "news category")
	cmd.Flags().StringVar(&draft.PublisherName, "publisher", "", "publisher name")
	cmd.Flags().StringVar(&draft.PublisherPhone, "phone", "", "publisher phone (masked before publication)")
	cmd.Flags().StringVar(&draft.ImageRef, "image", "", "optional image reference")
	for _, flag := range []string{"title", "description", "city", "publisher", "phone"} {
		_ = cmd.MarkFlagRequired(flag)
	}
	return cmd
}

func newFeedCmd() *cobra.Command {
	var city, category string
	var bookmarked bool

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Read the published news feed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := buildApp()
			if err != nil {
				return err
			}
			defer application.Close()

			filter := usecase.Filter{City: city}
			if category != "" {
				parsed, err := domain.ParseCategory(category)
				if err != nil {
					return fmt.Errorf("%w (valid: %s)", err, joinCategories())
				}
				filter.Category = parsed
			}

			var items []domain.PublishedItem
			if bookmarked {
				items, err = application.Feed.Bookmarked(cmd.Context(), application.UserID())
			} else {
				items, err = application.Feed.Published(cmd.Context(), filter)
			}
			if err != nil {
				return err
			}

			if len(items) == 0 {
				fmt.Println("No published news.")
				return nil
			}
			for _, item := range items {
				fmt.Printf("[%s] %s — %s, %s\n  %s\n  by %s (%s)\n\n",
					item.ID, item.EditedTitle, item.City, item.Category,
					item.EditedSummary, item.PublisherName, item.MaskedPhone)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&city, "city", "", "filter by city substring")
	cmd.Flags().StringVar(&category, "category", "", "filter by category")
	cmd.Flags().BoolVar(&bookmarked, "bookmarked", false, "show only bookmarked items")
	return cmd
}

func newBookmarkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bookmark <item-id>",
		Short: "Toggle a bookmark on a published item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := buildApp()
			if err != nil {
				return err
			}
			defer application.Close()

			on, err := application.Feed.ToggleBookmark(cmd.Context(), application.UserID(), args[0])
			if err != nil {
				return err
			}
			if on {
				fmt.Println("Bookmarked.")
			} else {
				fmt.Println("Bookmark removed.")
			}
			return nil
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show platform activity analytics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := buildApp()
			if err != nil {
				return err
			}
			defer application.Close()

			summary, err := application.Stats.Summary(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("Total posts: %d\n", summary.TotalPosts)
			fmt.Printf("Last week: %d, last month: %d, avg/day: %.1f\n",
				summary.PostsLastWeek, summary.PostsLastMonth, summary.AveragePostsPerDay)

			fmt.Println("\nTop topics:")
			for _, topic := range summary.TopTopics {
				fmt.Printf("  %-16s %3d (%d%%)\n", topic.Category, topic.Count, topic.Percentage)
			}
			fmt.Println("\nTop cities:")
			for _, city := range summary.TopCities {
				fmt.Printf("  %-16s %3d (%d%%)\n", city.City, city.Count, city.Percentage)
			}
			fmt.Println("\nLast 7 days:")
			for _, day := range summary.RecentActivity {
				fmt.Printf("  %-8s %d\n", day.Date, day.Count)
			}
			return nil
		},
	}
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Run one import cycle over the configured community boards",
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := buildApp()
			if err != nil {
				return err
			}
			defer application.Close()

			report, err := application.Importer.Run(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Fetched %d, published %d, rejected %d, failed %d.\n",
				report.Fetched, report.Published, report.Rejected, report.Failed)
			return nil
		},
	}
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run recurring imports until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := buildApp()
			if err != nil {
				return err
			}
			defer application.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return application.Run(ctx)
		},
	}
}

func joinCategories() string {
	values := make([]string, 0, len(domain.Categories()))
	for _, category := range domain.Categories() {
		values = append(values, string(category))
	}
	return strings.Join(values, ", ")
}
