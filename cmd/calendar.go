package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nikogura/creatoros/pkg/config"
	"github.com/nikogura/creatoros/pkg/llm"
	"github.com/nikogura/creatoros/pkg/profile"
	"github.com/nikogura/creatoros/pkg/scrapbook"
	"github.com/nikogura/creatoros/pkg/store"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//nolint:gochecknoglobals // Cobra boilerplate
var calendarNiche string

//nolint:gochecknoglobals // Cobra boilerplate
var calendarPlatforms []string

//nolint:gochecknoglobals // Cobra boilerplate
var calendarDays int

//nolint:gochecknoglobals // Cobra boilerplate
var calendarStart string

//nolint:gochecknoglobals // Cobra boilerplate
var calendarPostsPerWeek int

//nolint:gochecknoglobals // Cobra boilerplate
var calendarGoals string

//nolint:gochecknoglobals // Cobra boilerplate
var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Plan a content calendar",
	Long: `Plan posts across platforms for a date range. Favorite scrapbook ideas are
offered to the model as material.

Example:
  creatoros calendar --niche "home fitness" --platforms instagram,tiktok --days 14
  creatoros calendar --start 2025-03-03 --posts-per-week 3 --goals "grow newsletter"`,
	Args: cobra.NoArgs,
	RunE: runCalendar,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().StringVar(&calendarNiche, "niche", "", "Content niche (default from profile)")
	calendarCmd.Flags().StringSliceVar(&calendarPlatforms, "platforms", nil, "Platforms to plan for (default from profile)")
	calendarCmd.Flags().IntVar(&calendarDays, "days", llm.DefaultCalendarDays, "Days to plan")
	calendarCmd.Flags().StringVar(&calendarStart, "start", "", "First day, YYYY-MM-DD (default today)")
	calendarCmd.Flags().IntVar(&calendarPostsPerWeek, "posts-per-week", llm.DefaultPostsPerWeek, "Posting cadence")
	calendarCmd.Flags().StringVar(&calendarGoals, "goals", "", "What the calendar should achieve")
}

func runCalendar(cmd *cobra.Command, args []string) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	var cfg config.Config
	cfg, err = loadConfig()
	if err != nil {
		return err
	}

	var p profile.Profile
	p, err = loadProfile(cfg)
	if err != nil {
		return err
	}

	var client *llm.Client
	client, err = newAssistant(cfg)
	if err != nil {
		return err
	}

	req := llm.CalendarRequest{
		Niche:        firstNonEmpty(calendarNiche, p.Niche),
		Platforms:    calendarPlatforms,
		StartDate:    calendarStart,
		Days:         calendarDays,
		PostsPerWeek: calendarPostsPerWeek,
		Goals:        calendarGoals,
		Audience:     p.Audience,
		Tone:         p.Tone,
		Ideas:        favoriteIdeaTitles(cfg),
	}
	if len(req.Platforms) == 0 {
		req.Platforms = p.PlatformNames()
	}

	var resp llm.CalendarResponse
	err = withSpinner("Planning calendar...", func() (genErr error) {
		resp, genErr = client.GenerateCalendar(ctx, req)
		return genErr
	})
	if err != nil {
		err = errors.Wrap(err, "calendar generation failed")
		return err
	}

	if resp.Strategy != "" {
		fmt.Printf("%s\n%s\n\n", heading("Strategy"), resp.Strategy)
	}

	for _, post := range resp.Posts {
		fmt.Printf("%s  %-10s %s\n", heading(post.Date), post.Platform, post.Title)
		if post.ContentType != "" || post.BestTime != "" {
			fmt.Printf("            %s\n", faint(strings.TrimSpace(post.ContentType+" "+post.BestTime)))
		}
		if post.Caption != "" {
			fmt.Printf("            %s\n", post.Caption)
		}
		if len(post.Hashtags) > 0 {
			fmt.Printf("            %s\n", faint(strings.Join(post.Hashtags, " ")))
		}
	}

	return err
}

// favoriteIdeaTitles reads favorite ideas from the store. The calendar works without them.
func favoriteIdeaTitles(cfg config.Config) (titles []string) {
	st, err := store.Open(cfg.Store.Path)
	if err != nil {
		logger.Debug("scrapbook unavailable", zap.Error(err))
		return titles
	}
	defer func() { _ = st.Close() }()

	ideas, err := st.ListIdeas()
	if err != nil {
		logger.Debug("scrapbook unavailable", zap.Error(err))
		return titles
	}

	for _, idea := range scrapbook.Apply(ideas, scrapbook.Filter{FavoritesOnly: true}) {
		titles = append(titles, idea.Title)
	}
	return titles
}
