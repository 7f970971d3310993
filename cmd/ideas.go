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
)

//nolint:gochecknoglobals // Cobra boilerplate
var ideaTopic string

//nolint:gochecknoglobals // Cobra boilerplate
var ideaPlatform string

//nolint:gochecknoglobals // Cobra boilerplate
var ideaCount int

//nolint:gochecknoglobals // Cobra boilerplate
var ideaSave bool

//nolint:gochecknoglobals // Cobra boilerplate
var ideaNotes string

//nolint:gochecknoglobals // Cobra boilerplate
var ideaTags []string

//nolint:gochecknoglobals // Cobra boilerplate
var ideaFilter scrapbook.Filter

//nolint:gochecknoglobals // Cobra boilerplate
var ideaStatus string

//nolint:gochecknoglobals // Cobra boilerplate
var ideasCmd = &cobra.Command{
	Use:   "ideas",
	Short: "Manage the idea scrapbook",
}

//nolint:gochecknoglobals // Cobra boilerplate
var ideasSuggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest new content ideas",
	Long: `Suggest new content ideas. Related scrapbook entries are passed along so the
suggestions do not repeat them.

Example:
  creatoros ideas suggest --topic "meal prep" --count 5
  creatoros ideas suggest --platform youtube --save`,
	Args: cobra.NoArgs,
	RunE: runIdeasSuggest,
}

//nolint:gochecknoglobals // Cobra boilerplate
var ideasAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add an idea to the scrapbook",
	Long: `Add an idea to the scrapbook.

Example:
  creatoros ideas add "Desk stretches for coders" --tags mobility,office --platform tiktok`,
	Args: cobra.ExactArgs(1),
	RunE: runIdeasAdd,
}

//nolint:gochecknoglobals // Cobra boilerplate
var ideasListCmd = &cobra.Command{
	Use:   "list",
	Short: "List scrapbook ideas",
	Args:  cobra.NoArgs,
	RunE:  runIdeasList,
}

//nolint:gochecknoglobals // Cobra boilerplate
var ideasFavoriteCmd = &cobra.Command{
	Use:   "favorite <id>",
	Short: "Toggle an idea's favorite flag",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdeasFavorite,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(ideasCmd)
	ideasCmd.AddCommand(ideasSuggestCmd, ideasAddCmd, ideasListCmd, ideasFavoriteCmd)

	ideasSuggestCmd.Flags().StringVar(&ideaTopic, "topic", "", "Topic to brainstorm around")
	ideasSuggestCmd.Flags().StringVar(&ideaPlatform, "platform", "", "Platform to suggest for")
	ideasSuggestCmd.Flags().IntVar(&ideaCount, "count", llm.DefaultIdeaCount, "Number of ideas")
	ideasSuggestCmd.Flags().BoolVar(&ideaSave, "save", false, "Add the suggestions to the scrapbook")

	ideasAddCmd.Flags().StringVar(&ideaNotes, "notes", "", "Notes")
	ideasAddCmd.Flags().StringSliceVar(&ideaTags, "tags", nil, "Tags")
	ideasAddCmd.Flags().StringVar(&ideaPlatform, "platform", "", "Platform")

	ideasListCmd.Flags().StringVar(&ideaFilter.Tag, "tag", "", "Only ideas with this tag")
	ideasListCmd.Flags().StringVar(&ideaStatus, "status", "", "Only ideas in this status (idea, drafting, scheduled, posted)")
	ideasListCmd.Flags().StringVar(&ideaFilter.Platform, "platform", "", "Only ideas for this platform")
	ideasListCmd.Flags().BoolVar(&ideaFilter.FavoritesOnly, "favorites", false, "Only favorites")
	ideasListCmd.Flags().StringVarP(&ideaFilter.Query, "query", "q", "", "Search titles and notes")
}

func runIdeasSuggest(cmd *cobra.Command, args []string) (err error) {
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

	var st *store.Store
	st, err = openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	var existing []scrapbook.Idea
	existing, err = st.ListIdeas()
	if err != nil {
		return err
	}

	related := scrapbook.NewRetriever().Related(existing, firstNonEmpty(ideaTopic, p.Niche), nil, 10)
	if getVerbose() {
		fmt.Printf("Found %d related scrapbook ideas\n", len(related))
	}

	req := llm.IdeasRequest{
		Niche:    p.Niche,
		Topic:    ideaTopic,
		Platform: ideaPlatform,
		Count:    ideaCount,
		Existing: scrapbook.Titles(related),
	}

	var resp llm.IdeasResponse
	err = withSpinner("Brainstorming ideas...", func() (genErr error) {
		resp, genErr = client.SuggestIdeas(ctx, req)
		return genErr
	})
	if err != nil {
		err = errors.Wrap(err, "idea suggestion failed")
		return err
	}

	for i, suggestion := range resp.Ideas {
		fmt.Printf("%s %s\n", heading(fmt.Sprintf("%d.", i+1)), suggestion.Title)
		if suggestion.Hook != "" {
			fmt.Printf("   Hook: %s\n", suggestion.Hook)
		}
		if suggestion.Description != "" {
			fmt.Printf("   %s\n", suggestion.Description)
		}
		meta := strings.TrimSpace(strings.Join([]string{suggestion.Format, suggestion.Platform, strings.Join(suggestion.Tags, ", ")}, "  "))
		if meta != "" {
			fmt.Printf("   %s\n", faint(meta))
		}

		if !ideaSave {
			continue
		}

		idea := scrapbook.NewIdea(suggestion.Title, suggestion.Description, firstNonEmpty(suggestion.Platform, ideaPlatform), suggestion.Tags, time.Now().UTC())
		_, err = st.CreateIdea(idea)
		if err != nil {
			err = errors.Wrapf(err, "failed to save idea %q", suggestion.Title)
			return err
		}
	}

	if ideaSave {
		printDone("Saved %d ideas to the scrapbook", len(resp.Ideas))
	}

	return err
}

func runIdeasAdd(cmd *cobra.Command, args []string) (err error) {
	var cfg config.Config
	cfg, err = loadConfig()
	if err != nil {
		return err
	}

	var st *store.Store
	st, err = openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	var created scrapbook.Idea
	created, err = st.CreateIdea(scrapbook.NewIdea(args[0], ideaNotes, ideaPlatform, ideaTags, time.Now().UTC()))
	if err != nil {
		return err
	}

	printDone("Added idea %s", created.ID)
	return err
}

func runIdeasList(cmd *cobra.Command, args []string) (err error) {
	if ideaStatus != "" {
		ideaFilter.Status, err = scrapbook.ParseStatus(ideaStatus)
		if err != nil {
			return err
		}
	}

	var cfg config.Config
	cfg, err = loadConfig()
	if err != nil {
		return err
	}

	var st *store.Store
	st, err = openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	var ideas []scrapbook.Idea
	ideas, err = st.ListIdeas()
	if err != nil {
		return err
	}

	ideas = scrapbook.Apply(ideas, ideaFilter)
	if len(ideas) == 0 {
		fmt.Println("No ideas found")
		return err
	}

	for _, idea := range ideas {
		star := " "
		if idea.Favorite {
			star = warning("★")
		}
		fmt.Printf("%s %s  %-9s %s\n", star, faint(idea.ID), idea.Status, idea.Title)
		meta := make([]string, 0, len(idea.Tags)+1)
		if idea.Platform != "" {
			meta = append(meta, idea.Platform)
		}
		for _, tag := range idea.Tags {
			meta = append(meta, "#"+tag)
		}
		if len(meta) > 0 {
			fmt.Printf("  %s\n", faint(strings.Join(meta, " ")))
		}
	}

	return err
}

func runIdeasFavorite(cmd *cobra.Command, args []string) (err error) {
	var cfg config.Config
	cfg, err = loadConfig()
	if err != nil {
		return err
	}

	var st *store.Store
	st, err = openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	var idea scrapbook.Idea
	idea, err = st.ToggleFavorite(args[0])
	if err != nil {
		return err
	}

	if idea.Favorite {
		printDone("Marked %q as favorite", idea.Title)
	} else {
		printDone("Removed %q from favorites", idea.Title)
	}
	return err
}
