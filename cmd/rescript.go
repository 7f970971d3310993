package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nikogura/creatoros/pkg/config"
	"github.com/nikogura/creatoros/pkg/llm"
	"github.com/nikogura/creatoros/pkg/profile"
	"github.com/nikogura/creatoros/pkg/source"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var rescriptTo string

//nolint:gochecknoglobals // Cobra boilerplate
var rescriptFrom string

//nolint:gochecknoglobals // Cobra boilerplate
var rescriptTone string

//nolint:gochecknoglobals // Cobra boilerplate
var rescriptSeconds int

//nolint:gochecknoglobals // Cobra boilerplate
var rescriptCmd = &cobra.Command{
	Use:   "rescript <file-or-url>",
	Short: "Adapt existing content for another platform",
	Long: `Rewrite a script, transcript, blog post or web page for another platform.

The source can be provided as:
- A file path (e.g., transcript.txt, post.html)
- A URL (e.g., https://example.com/blog/sourdough)

Example:
  creatoros rescript transcript.txt --to tiktok
  creatoros rescript https://example.com/blog/sourdough --to instagram --tone playful --seconds 45`,
	Args: cobra.ExactArgs(1),
	RunE: runRescript,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(rescriptCmd)
	rescriptCmd.Flags().StringVar(&rescriptTo, "to", "", "Target platform (required)")
	rescriptCmd.Flags().StringVar(&rescriptFrom, "from", "", "Source platform")
	rescriptCmd.Flags().StringVar(&rescriptTone, "tone", "", "Voice of the script (default from profile)")
	rescriptCmd.Flags().IntVar(&rescriptSeconds, "seconds", 0, "Target length in seconds")
	_ = rescriptCmd.MarkFlagRequired("to")
}

func runRescript(cmd *cobra.Command, args []string) (err error) {
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

	var content string
	content, err = fetchSource(ctx, args[0])
	if err != nil {
		return err
	}

	req := llm.RescriptRequest{
		Content:        content,
		SourcePlatform: rescriptFrom,
		TargetPlatform: rescriptTo,
		Tone:           firstNonEmpty(rescriptTone, p.Tone),
		Seconds:        rescriptSeconds,
	}

	var resp llm.RescriptResponse
	err = withSpinner(fmt.Sprintf("Re-scripting for %s...", rescriptTo), func() (genErr error) {
		resp, genErr = client.Rescript(ctx, req)
		return genErr
	})
	if err != nil {
		err = errors.Wrap(err, "re-script failed")
		return err
	}

	fmt.Printf("%s\n%s\n\n", heading("Hook"), resp.Hook)
	fmt.Printf("%s\n%s\n\n", heading("Script"), resp.Script)
	if resp.CallToAction != "" {
		fmt.Printf("%s\n%s\n\n", heading("Call to action"), resp.CallToAction)
	}
	if len(resp.Hashtags) > 0 {
		fmt.Println(faint(strings.Join(resp.Hashtags, " ")))
	}
	if resp.Notes != "" {
		fmt.Printf("\n%s %s\n", faint("Notes:"), resp.Notes)
	}
	if getVerbose() && len(resp.AppliedFixes) > 0 {
		fmt.Printf("%s %s\n", faint("Cleaned up:"), strings.Join(resp.AppliedFixes, ", "))
	}

	return err
}

// fetchSource loads the source content, falling back to pasted text when a page cannot be fetched.
func fetchSource(ctx context.Context, input string) (content string, err error) {
	if getVerbose() {
		fmt.Printf("Loading source from: %s\n", input)
	}

	content, err = source.FetchWithContext(ctx, input)
	if err == nil {
		if getVerbose() {
			fmt.Printf("Source loaded (%d characters)\n", len(content))
		}
		return content, err
	}

	printWarning("Failed to fetch source: %v", err)
	fmt.Println("Paste the source text below.")
	fmt.Println("When finished, press Ctrl+D (Unix/Mac) or Ctrl+Z then Enter (Windows):")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if scanner.Err() != nil {
		err = errors.Wrap(scanner.Err(), "failed to read source from stdin")
		return content, err
	}

	content = strings.TrimSpace(strings.Join(lines, "\n"))
	if content == "" {
		err = errors.New("no source content provided")
		return content, err
	}

	fmt.Printf("\nSource received (%d characters)\n", len(content))
	err = nil
	return content, err
}
