package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nikogura/creatoros/pkg/collab"
	"github.com/nikogura/creatoros/pkg/config"
	"github.com/nikogura/creatoros/pkg/llm"
	"github.com/nikogura/creatoros/pkg/profile"
	"github.com/nikogura/creatoros/pkg/store"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var collabOffer string

//nolint:gochecknoglobals // Cobra boilerplate
var collabBudget float64

//nolint:gochecknoglobals // Cobra boilerplate
var collabCurrency string

//nolint:gochecknoglobals // Cobra boilerplate
var collabDeliverables []string

//nolint:gochecknoglobals // Cobra boilerplate
var collabDeadline string

//nolint:gochecknoglobals // Cobra boilerplate
var collabEmail string

//nolint:gochecknoglobals // Cobra boilerplate
var collabNotes string

//nolint:gochecknoglobals // Cobra boilerplate
var collabRanked bool

//nolint:gochecknoglobals // Cobra boilerplate
var collabExplain bool

//nolint:gochecknoglobals // Cobra boilerplate
var pitchProduct string

//nolint:gochecknoglobals // Cobra boilerplate
var pitchAngle string

//nolint:gochecknoglobals // Cobra boilerplate
var pitchRate string

//nolint:gochecknoglobals // Cobra boilerplate
var collabCmd = &cobra.Command{
	Use:   "collab",
	Short: "Track brand collaborations",
}

//nolint:gochecknoglobals // Cobra boilerplate
var collabAddCmd = &cobra.Command{
	Use:   "add <brand>",
	Short: "Record an inbound brand offer",
	Long: `Record an inbound brand offer. The offer is scored against the creator profile.

Example:
  creatoros collab add "FitGear" --offer "Resistance band review" --budget 1500 \
    --deliverables "1 reel,3 stories" --deadline 2025-04-01 --email deals@fitgear.example`,
	Args: cobra.ExactArgs(1),
	RunE: runCollabAdd,
}

//nolint:gochecknoglobals // Cobra boilerplate
var collabListCmd = &cobra.Command{
	Use:   "list",
	Short: "List collaborations",
	Args:  cobra.NoArgs,
	RunE:  runCollabList,
}

//nolint:gochecknoglobals // Cobra boilerplate
var collabStatusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Move a collaboration through the pipeline",
	Long: `Move a collaboration through the pipeline:

  inbox -> negotiating -> accepted -> in_progress -> delivered -> paid

An offer can be declined until work starts.`,
	Args: cobra.ExactArgs(2),
	RunE: runCollabStatus,
}

//nolint:gochecknoglobals // Cobra boilerplate
var collabAnalyzeCmd = &cobra.Command{
	Use:   "analyze <id>",
	Short: "Ask the AI gateway whether an offer is worth taking",
	Args:  cobra.ExactArgs(1),
	RunE:  runCollabAnalyze,
}

//nolint:gochecknoglobals // Cobra boilerplate
var collabPitchCmd = &cobra.Command{
	Use:   "pitch <brand>",
	Short: "Draft a pitch email to a brand",
	Long: `Draft a pitch email to a brand using the creator profile.

Example:
  creatoros collab pitch "FitGear" --product "resistance bands" --rate "$1,500 per reel"`,
	Args: cobra.ExactArgs(1),
	RunE: runCollabPitch,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(collabCmd)
	collabCmd.AddCommand(collabAddCmd, collabListCmd, collabStatusCmd, collabAnalyzeCmd, collabPitchCmd)

	collabAddCmd.Flags().StringVar(&collabOffer, "offer", "", "What the brand is asking for")
	collabAddCmd.Flags().Float64Var(&collabBudget, "budget", 0, "Offered budget")
	collabAddCmd.Flags().StringVar(&collabCurrency, "currency", "USD", "Budget currency")
	collabAddCmd.Flags().StringSliceVar(&collabDeliverables, "deliverables", nil, "Requested deliverables")
	collabAddCmd.Flags().StringVar(&collabDeadline, "deadline", "", "Deadline, YYYY-MM-DD")
	collabAddCmd.Flags().StringVar(&collabEmail, "email", "", "Brand contact email")
	collabAddCmd.Flags().StringVar(&collabNotes, "notes", "", "Notes")

	collabListCmd.Flags().BoolVar(&collabRanked, "ranked", false, "Order by score instead of arrival")
	collabListCmd.Flags().BoolVar(&collabExplain, "explain", false, "Show the rules behind each score")

	collabPitchCmd.Flags().StringVar(&pitchProduct, "product", "", "Product to feature")
	collabPitchCmd.Flags().StringVar(&pitchAngle, "angle", "", "Content angle to propose")
	collabPitchCmd.Flags().StringVar(&pitchRate, "rate", "", "Rate to quote")
}

// openCollabs loads config, profile and store for the collab commands.
func openCollabs() (cfg config.Config, p profile.Profile, st *store.Store, err error) {
	cfg, err = loadConfig()
	if err != nil {
		return cfg, p, st, err
	}

	p, err = loadProfile(cfg)
	if err != nil {
		return cfg, p, st, err
	}

	st, err = openStore(cfg)
	return cfg, p, st, err
}

func runCollabAdd(cmd *cobra.Command, args []string) (err error) {
	var p profile.Profile
	var st *store.Store
	_, p, st, err = openCollabs()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	c := collab.New(args[0], collabOffer, collabBudget, collabDeliverables, time.Now().UTC())
	c.Currency = strings.ToUpper(collabCurrency)
	c.Deadline = collabDeadline
	c.ContactEmail = collabEmail
	c.Notes = collabNotes

	result := collab.NewScorer().Score(c, p)
	c.Score = result.Total

	var created collab.Collaboration
	created, err = st.CreateCollab(c)
	if err != nil {
		return err
	}

	printDone("Added %s (%s) with score %d", created.Brand, created.ID, created.Score)
	if getVerbose() {
		fmt.Printf("  Rules: %s\n", strings.Join(result.Rules, ", "))
	}
	return err
}

func runCollabList(cmd *cobra.Command, args []string) (err error) {
	var p profile.Profile
	var st *store.Store
	_, p, st, err = openCollabs()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	var collabs []collab.Collaboration
	collabs, err = st.ListCollabs()
	if err != nil {
		return err
	}

	if len(collabs) == 0 {
		fmt.Println("No collaborations found")
		return err
	}

	scorer := collab.NewScorer()
	if collabRanked {
		collabs = scorer.Rank(collabs, p)
	}

	for _, c := range collabs {
		fmt.Printf("%s  %-12s %3d  %-20s %s\n", faint(c.ID), c.Status, c.Score, c.Brand, formatBudget(c))
		if collabExplain {
			for _, rule := range scorer.Score(c, p).Rules {
				fmt.Printf("      %s %s\n", faint(fmt.Sprintf("%+d", collab.ScoringRules[rule].Weight)), collab.ScoringRules[rule].Description)
			}
		}
	}

	return err
}

func runCollabStatus(cmd *cobra.Command, args []string) (err error) {
	var status collab.Status
	status, err = collab.ParseStatus(args[1])
	if err != nil {
		return err
	}

	var st *store.Store
	_, _, st, err = openCollabs()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	var c collab.Collaboration
	c, err = st.UpdateCollabStatus(args[0], status)
	if err != nil {
		return err
	}

	printDone("%s is now %s", c.Brand, c.Status)
	return err
}

func runCollabAnalyze(cmd *cobra.Command, args []string) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	var cfg config.Config
	var p profile.Profile
	var st *store.Store
	cfg, p, st, err = openCollabs()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	var c collab.Collaboration
	c, err = st.GetCollab(args[0])
	if err != nil {
		return err
	}

	var client *llm.Client
	client, err = newAssistant(cfg)
	if err != nil {
		return err
	}

	req := llm.CollabAnalysisRequest{
		Niche:        p.Niche,
		Audience:     p.Audience,
		Followers:    p.TotalFollowers(),
		Brand:        c.Brand,
		Offer:        c.Offer,
		Budget:       c.Budget,
		Currency:     c.Currency,
		Deliverables: c.Deliverables,
		Deadline:     c.Deadline,
	}

	var analysis llm.CollabAnalysis
	err = withSpinner(fmt.Sprintf("Analyzing offer from %s...", c.Brand), func() (genErr error) {
		analysis, genErr = client.AnalyzeCollab(ctx, req)
		return genErr
	})
	if err != nil {
		err = errors.Wrap(err, "collaboration analysis failed")
		return err
	}

	fmt.Printf("%s %d/100 (local score %d)\n", heading("Fit:"), analysis.FitScore, c.Score)
	fmt.Printf("%s %s\n", heading("Recommendation:"), analysis.Recommendation)
	if analysis.SuggestedRate != "" {
		fmt.Printf("%s %s\n", heading("Suggested rate:"), analysis.SuggestedRate)
	}
	printList("Strengths", analysis.Strengths)
	printList("Risks", analysis.Risks)
	if analysis.ReplyDraft != "" {
		fmt.Printf("\n%s\n%s\n", heading("Reply draft"), analysis.ReplyDraft)
	}

	return err
}

func runCollabPitch(cmd *cobra.Command, args []string) (err error) {
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

	req := llm.PitchRequest{
		CreatorName: p.Name,
		Niche:       p.Niche,
		Audience:    p.Audience,
		Followers:   p.TotalFollowers(),
		Platforms:   p.PlatformNames(),
		Brand:       args[0],
		Product:     pitchProduct,
		Angle:       pitchAngle,
		Rate:        pitchRate,
	}

	var pitch llm.PitchResponse
	err = withSpinner(fmt.Sprintf("Drafting pitch to %s...", args[0]), func() (genErr error) {
		pitch, genErr = client.DraftPitch(ctx, req)
		return genErr
	})
	if err != nil {
		err = errors.Wrap(err, "pitch drafting failed")
		return err
	}

	fmt.Printf("%s %s\n\n%s\n", heading("Subject:"), pitch.Subject, pitch.Body)
	printList("Deliverables", pitch.Deliverables)
	if pitch.FollowUp != "" {
		fmt.Printf("\n%s\n%s\n", heading("Follow-up"), pitch.FollowUp)
	}

	return err
}

func formatBudget(c collab.Collaboration) (budget string) {
	if c.Budget <= 0 {
		budget = faint("no budget")
		return budget
	}
	budget = fmt.Sprintf("%.2f %s", c.Budget, c.Currency)
	return budget
}

func printList(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("\n%s\n", heading(title))
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
}
