// Command plume exports letters stored as JSON files and runs the engine's
// analysis tools from the command line.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/motivationletter/plume"
	"github.com/motivationletter/plume/analysis"
	"github.com/motivationletter/plume/compare"
	"github.com/motivationletter/plume/model"
	"github.com/motivationletter/plume/template"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "plume",
		Short: "Letter export and analysis engine",
	}

	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(compareCmd())
	rootCmd.AddCommand(mergeCmd())
	rootCmd.AddCommand(templateCmd())
	rootCmd.AddCommand(suggestCmd())
	rootCmd.AddCommand(convertCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// letterFile is the on-disk input: a letter plus an optional sender
// profile.
type letterFile struct {
	Letter  model.LetterRecord `json:"letter"`
	Profile model.UserProfile  `json:"profile"`
}

func readLetterFile(path string) (letterFile, error) {
	var in letterFile
	data, err := os.ReadFile(path)
	if err != nil {
		return in, fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &in); err != nil {
		return in, fmt.Errorf("parse %s: %w", path, err)
	}
	return in, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(out))
	return nil
}

func exportCmd() *cobra.Command {
	var (
		formatName string
		outPath    string
		quality    string
		fontSize   int
		fontFamily string
		watermark  bool
		metadata   bool
		margin     float64
	)

	cmd := &cobra.Command{
		Use:   "export [letter.json]",
		Short: "Render a letter as pdf, docx, txt, or html",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readLetterFile(args[0])
			if err != nil {
				return err
			}

			exporter := plume.Letter(in.Letter, in.Profile).
				Format(formatName).
				Quality(model.Quality(quality)).
				FontSize(fontSize).
				FontFamily(fontFamily)
			if watermark {
				exporter.Watermark()
			}
			if metadata {
				exporter.WithMetadata()
			}
			if margin > 0 {
				exporter.Margins(model.Margins{Top: margin, Right: margin, Bottom: margin, Left: margin})
			}

			result, err := exporter.Result()
			if err != nil {
				return err
			}
			for _, warning := range result.Warnings {
				cmd.PrintErrln("warning:", warning)
			}

			target := outPath
			if target == "" {
				target = result.Filename
			}
			if err := os.WriteFile(target, result.Buffer, 0644); err != nil {
				return fmt.Errorf("write %s: %w", target, err)
			}
			cmd.Printf("Wrote %s (%s, %d bytes)\n", target, result.MIMEType, len(result.Buffer))
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "pdf", "export format: pdf, docx, txt, html")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output path (defaults to a name derived from the title)")
	cmd.Flags().StringVar(&quality, "quality", "standard", "compression profile: standard, high, ultra")
	cmd.Flags().IntVar(&fontSize, "font-size", 11, "body font size in points")
	cmd.Flags().StringVar(&fontFamily, "font-family", "Helvetica", "body font family")
	cmd.Flags().BoolVar(&watermark, "watermark", false, "stamp the watermark")
	cmd.Flags().BoolVar(&metadata, "metadata", false, "append creation/modification timestamps")
	cmd.Flags().Float64Var(&margin, "margin", 0, "page margin in centimeters, applied to all sides")
	return cmd
}

func analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [letter.json]",
		Short: "Score a letter's structure and detect its profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readLetterFile(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, struct {
				Structure analysis.Structure `json:"structure"`
				Profile   analysis.Profile   `json:"profile"`
			}{
				Structure: analysis.AnalyzeStructure(in.Letter.Content),
				Profile:   analysis.DetectProfile(in.Letter.Content, in.Letter.JobTitle),
			})
		},
	}
}

func compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare [one.json] [two.json]",
		Short: "Build a comparison report for two letters",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			one, err := readLetterFile(args[0])
			if err != nil {
				return err
			}
			two, err := readLetterFile(args[1])
			if err != nil {
				return err
			}
			return printJSON(cmd, compare.Letters(one.Letter, two.Letter))
		},
	}
}

func mergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge [existing.json] [new.json]",
		Short: "Merge two letter bodies with the positional heuristic",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			existing, err := readLetterFile(args[0])
			if err != nil {
				return err
			}
			fresh, err := readLetterFile(args[1])
			if err != nil {
				return err
			}
			cmd.Println(plume.MergeContent(existing.Letter.Content, fresh.Letter.Content))
			return nil
		},
	}
}

func suggestCmd() *cobra.Command {
	var (
		userID       string
		lettersDir   string
		templatesDir string
	)

	cmd := &cobra.Command{
		Use:   "suggest [letterID]",
		Short: "Rank the stored template catalog against a letter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := newFileStore(lettersDir, templatesDir)
			engine := plume.NewEngine(store, store, plume.WithProfileStore(store))

			result, err := engine.SuggestTemplates(cmd.Context(), args[0], userID)
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		},
	}

	cmd.Flags().StringVarP(&userID, "user", "u", "", "owning user ID")
	cmd.Flags().StringVar(&lettersDir, "letters", "letters", "directory of letter JSON files")
	cmd.Flags().StringVar(&templatesDir, "templates", "templates", "directory of stored template JSON files")
	return cmd
}

func convertCmd() *cobra.Command {
	var (
		userID       string
		lettersDir   string
		templatesDir string
		name         string
		category     string
	)

	cmd := &cobra.Command{
		Use:   "convert [letterID]",
		Short: "Convert a finalized letter into a stored template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := newFileStore(lettersDir, templatesDir)
			engine := plume.NewEngine(store, store)

			result, err := engine.ConvertToTemplate(cmd.Context(), args[0], userID, plume.TemplateMeta{
				Name:     name,
				Category: category,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		},
	}

	cmd.Flags().StringVarP(&userID, "user", "u", "", "owning user ID")
	cmd.Flags().StringVar(&lettersDir, "letters", "letters", "directory of letter JSON files")
	cmd.Flags().StringVar(&templatesDir, "templates", "templates", "directory of stored template JSON files")
	cmd.Flags().StringVarP(&name, "name", "n", "", "template name")
	cmd.Flags().StringVar(&category, "category", "", "template category")
	return cmd
}

func templateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "template [letter.json]",
		Short: "Derive a reusable template from a finalized letter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readLetterFile(args[0])
			if err != nil {
				return err
			}
			if in.Letter.Status != model.StatusFinal {
				return fmt.Errorf("letter %s is not finalized", strings.TrimSpace(in.Letter.ID))
			}
			return printJSON(cmd, template.Extract(in.Letter))
		},
	}
}
