// Magic link generator for lead-gen campaigns
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"studio-site/internal/catalog"
	"studio-site/internal/magiclink"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const defaultSiteURL = "https://yourstudio.com"

var errEmptyEntry = errors.New("company and industry are required")

var (
	titleColor = color.New(color.FgHiGreen, color.Bold)
	labelColor = color.New(color.FgHiYellow)
	urlColor   = color.New(color.FgCyan)
	warnColor  = color.New(color.FgHiYellow, color.Bold)
	errorColor = color.New(color.FgHiRed)
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd(siteURL(), os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func siteURL() string {
	if v := os.Getenv("SITE_URL"); v != "" {
		return v
	}
	return defaultSiteURL
}

func newRootCmd(baseURL string, stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:          "magiclink",
		Short:        "Generate personalized landing page links",
		SilenceUsage: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.AddCommand(
		newGenerateCmd(baseURL),
		newBatchCmd(baseURL),
		newIndustriesCmd(),
	)
	return root
}

func newGenerateCmd(baseURL string) *cobra.Command {
	var company, industry, ref string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a single magic link",
		Example: `  magiclink generate --company "Gucci" --industry fashion
  magiclink generate --company "Ritz Carlton" --industry hospitality --ref agent001`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entry := magiclink.Entry{Company: company, Industry: industry, Ref: ref}
			if !entry.Valid() {
				errorColor.Fprintln(cmd.ErrOrStderr(), "Error: --company and --industry must not be empty")
				return errEmptyEntry
			}

			link := magiclink.Generate(baseURL, entry.Company, entry.Industry, entry.Ref)
			if !link.Supported {
				warnUnsupported(cmd.ErrOrStderr(), industry)
			}
			printLink(cmd.OutOrStdout(), link)
			return nil
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "company name")
	cmd.Flags().StringVar(&industry, "industry", "", "industry type")
	cmd.Flags().StringVar(&ref, "ref", "", "reference/tracking code")
	_ = cmd.MarkFlagRequired("company")
	_ = cmd.MarkFlagRequired("industry")

	return cmd
}

func newBatchCmd(baseURL string) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Generate links from a JSON or YAML file of {company, industry, ref?}",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := magiclink.LoadBatch(args[0])
			if err != nil {
				errorColor.Fprintf(cmd.ErrOrStderr(), "Error reading batch file: %v\n", err)
				return err
			}

			links, skipped := magiclink.GenerateBatch(baseURL, entries)
			for _, e := range skipped {
				errorColor.Fprintf(cmd.ErrOrStderr(), "Skipping invalid entry: %+v\n", e)
			}
			for _, l := range links {
				if !l.Supported {
					warnUnsupported(cmd.ErrOrStderr(), l.Industry)
				}
			}

			w := cmd.OutOrStdout()
			titleColor.Fprintf(w, "\n✨ Generated %d Magic Links!\n\n", len(links))
			for i, l := range links {
				fmt.Fprintf(w, "%d. %s (%s)\n", i+1, l.Company, l.Industry)
				urlColor.Fprintf(w, "   %s\n\n", l.FullURL)
			}

			if out == "" {
				return nil
			}
			if err := magiclink.WriteJSON(out, links); err != nil {
				return fmt.Errorf("write results: %w", err)
			}
			abs, _ := filepath.Abs(out)
			fmt.Fprintf(w, "📄 Full results saved to: %s\n\n", abs)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "magic-links-output.json", "where to save results (empty to skip)")
	return cmd
}

func newIndustriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "industries",
		Short: "List supported industries",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			for _, key := range catalog.IndustryKeys() {
				cfg := catalog.Industry(key)
				fmt.Fprintf(w, "%-12s %s\n", key, cfg.Description)
			}
		},
	}
}

func printLink(w io.Writer, link magiclink.Link) {
	titleColor.Fprintln(w, "\n✨ Magic Link Generated!")
	fmt.Fprintln(w)
	labelColor.Fprint(w, "Company:  ")
	fmt.Fprintln(w, link.Company)
	labelColor.Fprint(w, "Industry: ")
	fmt.Fprintln(w, link.Industry)
	if link.Ref != "" {
		labelColor.Fprint(w, "Ref:      ")
		fmt.Fprintln(w, link.Ref)
	}

	fmt.Fprintln(w, "\n📧 For Email Template:")
	urlColor.Fprintf(w, "   %s\n", link.DisplayURL)
	fmt.Fprintln(w, "\n🔗 Full URL:")
	urlColor.Fprintf(w, "   %s\n", link.FullURL)
	fmt.Fprintln(w, "\n💡 Short URL (for display):")
	urlColor.Fprintf(w, "   %s\n\n", link.ShortURL)
}

func warnUnsupported(w io.Writer, industry string) {
	warnColor.Fprintf(w,
		"Warning: %q is not a supported industry (%s). Using generic template.\n",
		industry, strings.Join(catalog.IndustryKeys(), ", "),
	)
}
