package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/nikogura/creatoros/pkg/config"
	"github.com/nikogura/creatoros/pkg/llm"
	"github.com/nikogura/creatoros/pkg/pagefile"
	"github.com/nikogura/creatoros/pkg/profile"
	"github.com/nikogura/creatoros/pkg/publish"
	"github.com/nikogura/creatoros/pkg/sanitize"
	"github.com/nikogura/creatoros/pkg/store"
	"github.com/nikogura/creatoros/pkg/website"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//nolint:gochecknoglobals // Cobra boilerplate
var siteOutDir string

//nolint:gochecknoglobals // Cobra boilerplate
var siteSanitize bool

//nolint:gochecknoglobals // Cobra boilerplate
var siteConcurrency int

//nolint:gochecknoglobals // Cobra boilerplate
var siteYear int

//nolint:gochecknoglobals // Cobra boilerplate
var siteName string

//nolint:gochecknoglobals // Cobra boilerplate
var siteNiche string

//nolint:gochecknoglobals // Cobra boilerplate
var siteDescription string

//nolint:gochecknoglobals // Cobra boilerplate
var siteAudience string

//nolint:gochecknoglobals // Cobra boilerplate
var siteTheme string

//nolint:gochecknoglobals // Cobra boilerplate
var siteOut string

//nolint:gochecknoglobals // Cobra boilerplate
var siteSave bool

//nolint:gochecknoglobals // Cobra boilerplate
var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Build creator websites",
}

//nolint:gochecknoglobals // Cobra boilerplate
var siteRenderCmd = &cobra.Command{
	Use:   "render <page-file>...",
	Short: "Render page description files to HTML",
	Long: `Render one or more page description files (YAML or JSON) to standalone HTML.

Each page is written to <out-dir>/<slug>/index.html.

Example:
  creatoros site render jane.yaml
  creatoros site render pages/*.yaml --out-dir ./public --sanitize --concurrency 4`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSiteRender,
}

//nolint:gochecknoglobals // Cobra boilerplate
var siteGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a page description with AI and render it",
	Long: `Generate a page description through the AI gateway, save it as a page file
and render it. Name, niche, description and links default to the creator profile.

Example:
  creatoros site generate --niche "home fitness" --description "Coach for busy parents"
  creatoros site generate --theme neon --out jane.yaml --save`,
	Args: cobra.NoArgs,
	RunE: runSiteGenerate,
}

//nolint:gochecknoglobals // Cobra boilerplate
var siteStarterCmd = &cobra.Command{
	Use:   "starter",
	Short: "Write a starter page file from the creator profile",
	Args:  cobra.NoArgs,
	RunE:  runSiteStarter,
}

//nolint:gochecknoglobals // Cobra boilerplate
var siteThemesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List built-in themes",
	Args:  cobra.NoArgs,
	RunE:  runSiteThemes,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(siteCmd)
	siteCmd.AddCommand(siteRenderCmd, siteGenerateCmd, siteStarterCmd, siteThemesCmd)

	siteCmd.PersistentFlags().StringVar(&siteOutDir, "out-dir", "", "Output directory (default from config)")

	siteRenderCmd.Flags().BoolVar(&siteSanitize, "sanitize", false, "Sanitize untrusted page content before rendering")
	siteRenderCmd.Flags().IntVar(&siteConcurrency, "concurrency", 4, "Pages rendered at once (0 for unlimited)")
	siteRenderCmd.Flags().IntVar(&siteYear, "year", 0, "Footer copyright year (default current year)")

	siteGenerateCmd.Flags().StringVar(&siteName, "name", "", "Creator name (default from profile)")
	siteGenerateCmd.Flags().StringVar(&siteNiche, "niche", "", "Content niche (default from profile)")
	siteGenerateCmd.Flags().StringVar(&siteDescription, "description", "", "What the creator does (default profile bio)")
	siteGenerateCmd.Flags().StringVar(&siteAudience, "audience", "", "Target audience (default from profile)")
	siteGenerateCmd.Flags().StringVar(&siteTheme, "theme", "", "Preferred theme (default from config)")
	siteGenerateCmd.Flags().StringVar(&siteOut, "out", "", "Page file to write (default <out-dir>/<slug>.yaml)")
	siteGenerateCmd.Flags().BoolVar(&siteSave, "save", false, "Also save the site to the local store for 'serve'")

	siteStarterCmd.Flags().StringVar(&siteTheme, "theme", "", "Theme (default from config)")
	siteStarterCmd.Flags().StringVar(&siteOut, "out", "", "Page file to write (default <out-dir>/<slug>.yaml)")
}

func getSiteOutDir(cfg config.Config) (dir string) {
	dir = siteOutDir
	if dir == "" {
		dir = cfg.Defaults.OutputDir
	}
	return dir
}

func getSiteTheme(cfg config.Config) (theme website.Theme, err error) {
	theme = website.Theme(strings.ToLower(siteTheme))
	if theme == "" {
		theme = website.Theme(cfg.Defaults.Theme)
	}

	if _, ok := website.Palette(theme); !ok {
		err = errors.Errorf("unknown theme %q (see 'creatoros site themes')", siteTheme)
		return theme, err
	}
	return theme, err
}

func runSiteRender(cmd *cobra.Command, args []string) (err error) {
	var cfg config.Config
	cfg, err = loadConfig()
	if err != nil {
		return err
	}

	outDir := getSiteOutDir(cfg)
	year := siteYear
	if year == 0 {
		year = time.Now().Year()
	}

	jobs := make([]publish.Job, 0, len(args))
	sources := make(map[string]string, len(args))
	for _, path := range args {
		var page website.PageDescription
		page, err = pagefile.Load(path)
		if err != nil {
			return err
		}

		if siteSanitize {
			page = sanitize.Page(page)
		}

		slug := publish.Slug(page.Name)
		if previous, dup := sources[slug]; dup {
			err = errors.Errorf("%s and %s both publish to %s", previous, path, slug)
			return err
		}
		sources[slug] = path

		jobs = append(jobs, publish.Job{Page: page, Dir: filepath.Join(outDir, slug)})
	}

	var paths []string
	paths, err = publish.Batch(context.Background(), jobs, year, siteConcurrency)
	if err != nil {
		// Don't leave a half-published batch behind.
		written := make([]string, 0, len(paths))
		for _, path := range paths {
			if path != "" {
				written = append(written, path)
			}
		}
		cleanupErr := publish.Cleanup(written...)
		if cleanupErr != nil {
			logger.Warn("failed to remove partial output", zap.Error(cleanupErr))
		}
		return err
	}

	for i, path := range paths {
		printDone("%s -> %s", args[i], path)
	}
	return err
}

func runSiteGenerate(cmd *cobra.Command, args []string) (err error) {
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

	var theme website.Theme
	theme, err = getSiteTheme(cfg)
	if err != nil {
		return err
	}

	var client *llm.Client
	client, err = newAssistant(cfg)
	if err != nil {
		return err
	}

	req := llm.WebsiteRequest{
		Name:        firstNonEmpty(siteName, p.Name),
		Niche:       firstNonEmpty(siteNiche, p.Niche),
		Description: firstNonEmpty(siteDescription, p.Bio),
		Audience:    firstNonEmpty(siteAudience, p.Audience),
		Offerings:   p.Offerings,
		Links:       p.PageDescription(theme).Links,
		Theme:       theme,
	}

	var page website.PageDescription
	err = withSpinner("Generating website...", func() (genErr error) {
		page, genErr = client.GenerateWebsite(ctx, req)
		return genErr
	})
	if err != nil {
		err = errors.Wrap(err, "website generation failed")
		return err
	}

	err = writePage(cfg, page)
	if err != nil {
		return err
	}

	if siteSave {
		var st *store.Store
		st, err = openStore(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		var saved store.Website
		saved, err = st.SaveWebsite(store.Website{Page: page})
		if err != nil {
			return err
		}
		printDone("Saved as /sites/%s", saved.Slug)
	}

	return err
}

func runSiteStarter(cmd *cobra.Command, args []string) (err error) {
	var cfg config.Config
	cfg, err = loadConfig()
	if err != nil {
		return err
	}

	if cfg.ProfilePath == "" {
		err = errors.New("profile_path is not set in config")
		return err
	}

	var p profile.Profile
	p, err = loadProfile(cfg)
	if err != nil {
		return err
	}

	var theme website.Theme
	theme, err = getSiteTheme(cfg)
	if err != nil {
		return err
	}

	page := p.PageDescription(theme)
	err = page.Validate()
	if err != nil {
		err = errors.Wrap(err, "profile does not make a complete page")
		return err
	}

	err = writePage(cfg, page)
	return err
}

// writePage saves page as a page file and renders it next to the other sites.
func writePage(cfg config.Config, page website.PageDescription) (err error) {
	outDir := getSiteOutDir(cfg)
	slug := publish.Slug(page.Name)

	pagePath := siteOut
	if pagePath == "" {
		pagePath = filepath.Join(outDir, slug+".yaml")
	}

	err = pagefile.Save(pagePath, page)
	if err != nil {
		return err
	}
	printDone("Page file saved at: %s", pagePath)

	var htmlPath string
	htmlPath, err = publish.WriteSite(filepath.Join(outDir, slug), website.Render(sanitize.Page(page)))
	if err != nil {
		return err
	}
	printDone("Website saved at: %s", htmlPath)

	return err
}

func runSiteThemes(cmd *cobra.Command, args []string) (err error) {
	for _, theme := range website.Themes() {
		scheme, _ := website.Palette(theme)
		fmt.Printf("%-10s %s\n", heading(theme), faint(fmt.Sprintf("primary %s  accent %s  background %s", scheme.Primary, scheme.Accent, scheme.Background.CSS())))
	}
	return err
}

func firstNonEmpty(values ...string) (value string) {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			value = v
			return value
		}
	}
	return value
}
