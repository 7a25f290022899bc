package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-insight/internal/config"
	"github.com/jonathan/resume-insight/internal/ingestion"
	"github.com/jonathan/resume-insight/internal/observability"
	"github.com/jonathan/resume-insight/internal/pipeline"
	"github.com/jonathan/resume-insight/internal/schemas"
	"github.com/jonathan/resume-insight/internal/taxonomy"
	"github.com/jonathan/resume-insight/internal/types"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze <resume-file>",
	Short: "Analyze a resume file (pdf, docx, or txt)",
	Long: `Extracts skills, experience, contact details, and education from a resume,
scores it, and prints improvement suggestions. Supply a job description
with --job, --job-text, or --job-url to also compute a match score.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath string
	analyzeJob        string
	analyzeJobText    string
	analyzeJobURL     string
	analyzeTaxonomy   string
	analyzeUseBrowser bool
	analyzeVerbose    bool
	analyzeJSON       bool
)

func init() {
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCommand.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to a job description text file (mutually exclusive with --job-text and --job-url)")
	analyzeCommand.Flags().StringVar(&analyzeJobText, "job-text", "", "Job description supplied inline")
	analyzeCommand.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch the job posting from")
	analyzeCommand.Flags().StringVarP(&analyzeTaxonomy, "taxonomy", "t", "", "Path to a taxonomy override JSON file")
	analyzeCommand.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use headless browser for SPA job sites (requires Chrome)")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")
	analyzeCommand.Flags().BoolVar(&analyzeJSON, "json", false, "Emit the analysis as JSON instead of formatted output")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if analyzeVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", analyzeConfigPath)
		}
	}

	if cmd.Flags().Changed("taxonomy") {
		cfg.Taxonomy = analyzeTaxonomy
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = analyzeUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}

	jobSources := 0
	for _, v := range []string{analyzeJob, analyzeJobText, analyzeJobURL} {
		if v != "" {
			jobSources++
		}
	}
	if jobSources > 1 {
		return fmt.Errorf("--job, --job-text, and --job-url are mutually exclusive")
	}

	resumePath := args[0]
	data, err := os.ReadFile(resumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	text, err := ingestion.ExtractText(data, resumePath)
	if err != nil {
		return fmt.Errorf("failed to extract resume text: %w", err)
	}

	jobDesc, err := resolveJobDescription(ctx, cfg.UseBrowser, cfg.Verbose)
	if err != nil {
		return err
	}

	tax, err := loadTaxonomy(cfg.Taxonomy)
	if err != nil {
		return err
	}

	result, err := pipeline.Analyze(ctx, text, pipeline.Options{
		Taxonomy:       tax,
		JobDescription: jobDesc,
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if analyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(types.AnalyzeResponse{
			ResumeData: result.Analysis,
			MatchScore: result.MatchScore,
		})
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintAnalysis(result.Analysis)
	if result.MatchScore != nil {
		printer.PrintMatch(*result.MatchScore)
	}
	printer.PrintSuggestions(result.Analysis.Suggestions)
	return nil
}

// resolveJobDescription returns the job description text from whichever
// source flag was set, or "" when none was.
func resolveJobDescription(ctx context.Context, useBrowser, verbose bool) (string, error) {
	switch {
	case analyzeJobText != "":
		return analyzeJobText, nil
	case analyzeJob != "":
		data, err := os.ReadFile(analyzeJob)
		if err != nil {
			return "", fmt.Errorf("failed to read job description file: %w", err)
		}
		return string(data), nil
	case analyzeJobURL != "":
		text, err := ingestion.JobDescriptionFromURL(ctx, analyzeJobURL, useBrowser, verbose)
		if err != nil {
			return "", fmt.Errorf("failed to fetch job posting: %w", err)
		}
		if strings.TrimSpace(text) == "" {
			return "", fmt.Errorf("job posting at %s contained no text", analyzeJobURL)
		}
		return text, nil
	default:
		return "", nil
	}
}

// loadTaxonomy reads and validates a taxonomy override file; an empty
// path selects the built-in taxonomy.
func loadTaxonomy(path string) (*taxonomy.Taxonomy, error) {
	if path == "" {
		return taxonomy.Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file: %w", err)
	}
	if err := schemas.ValidateTaxonomy(data); err != nil {
		return nil, fmt.Errorf("invalid taxonomy file %s: %w", path, err)
	}
	tax, err := taxonomy.ParseJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy file: %w", err)
	}
	return tax, nil
}
