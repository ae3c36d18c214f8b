package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/cv-matcher/internal/ai"
	"github.com/spigell/cv-matcher/internal/ai/gemini"
	"github.com/spigell/cv-matcher/internal/logger"
	"github.com/spigell/cv-matcher/internal/matching"
	"github.com/spigell/cv-matcher/internal/report"
	"github.com/spigell/cv-matcher/internal/secrets"
)

const (
	PromptScorecard = "Show full scorecard"
	PromptSummary   = "Show summary"
	PromptDomains   = "Show weighting table"
	PromptStrengths = "Show key strengths"
	PromptDump      = "Dump scorecard to file"
	PromptExit      = "Exit"

	geminiAPIKeyEnv = "GEMINI_API_KEY"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "Next?",
	Items: []string{PromptScorecard, PromptSummary, PromptDomains, PromptStrengths, PromptDump, PromptExit},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume against a job description with the AI provider and print the scorecard",
	Run: func(cmd *cobra.Command, _ []string) {
		analyze(cmd)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("resume", "r", "", "plain text resume file")
	analyzeCmd.Flags().String("jd", "", "plain text job description file")
	analyzeCmd.Flags().StringP("output", "o", report.FormatText, "output format: text or json")
	analyzeCmd.Flags().BoolP("yes", "y", false, "print the scorecard and exit without the interactive menu")

	analyzeCmd.MarkFlagRequired("resume")
	analyzeCmd.MarkFlagRequired("jd")
}

func analyze(cmd *cobra.Command) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	zlog, config := setup()
	defer zlog.Sync()

	resumePath, _ := cmd.Flags().GetString("resume")
	jdPath, _ := cmd.Flags().GetString("jd")
	format, _ := cmd.Flags().GetString("output")
	noMenu, _ := cmd.Flags().GetBool("yes")

	resume, err := readText(resumePath)
	if err != nil {
		zlog.Fatal("reading resume", zap.Error(err))
	}

	jobDescription, err := readText(jdPath)
	if err != nil {
		zlog.Fatal("reading job description", zap.Error(err))
	}

	analyzer, err := newAnalyzer(ctx, config.AI, zlog)
	if err != nil {
		zlog.Fatal("building analyzer", zap.Error(err), zap.String("hint", "set ai.gemini.api-key-file or "+geminiAPIKeyEnv))
	}

	zlog.Info("analyzing matching", zap.String("resume", resumePath), zap.String("job_description", jdPath))

	doc, err := analyzer.Analyze(ctx, resume, jobDescription)
	if err != nil {
		zlog.Fatal("analyzing matching", zap.Error(err))
	}

	card := newSummarizer(config.Summary, zlog).BuildScorecard(doc.Candidate, doc.Analysis, commentLength(config.Summary))
	zlog.Info("scorecard built", logger.ScorecardFields(card)...)

	out := cmd.OutOrStdout()
	if noMenu || strings.EqualFold(format, report.FormatJSON) {
		if err := report.Write(out, card, format); err != nil {
			zlog.Fatal("writing scorecard", zap.Error(err))
		}
		return
	}

	if err := report.WriteHeader(out, card); err != nil {
		zlog.Fatal("writing scorecard", zap.Error(err))
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			zlog.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, out, card, zlog); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			zlog.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, out io.Writer, card matching.Scorecard, zlog *zap.Logger) error {
	switch action {
	case PromptScorecard:
		return report.WriteText(out, card)
	case PromptSummary:
		return report.WriteSummary(out, card)
	case PromptDomains:
		if len(card.Rows) == 0 {
			zlog.Info("no domain assessments in analysis")
			return nil
		}
		return report.WriteDomains(out, card)
	case PromptStrengths:
		if len(card.KeyStrengths) == 0 {
			zlog.Info("no key strengths in analysis")
			return nil
		}
		return report.WriteStrengths(out, card)
	case PromptDump:
		filename, err := report.DumpToTmpFile(card)
		if err != nil {
			return fmt.Errorf("dump scorecard to file: %w", err)
		}
		zlog.Info("dumping scorecard to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		zlog.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func newAnalyzer(ctx context.Context, cfg *AIConfig, zlog *zap.Logger) (ai.Analyzer, error) {
	if cfg == nil || cfg.Gemini == nil {
		return nil, errors.New("gemini configuration is required")
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		File:  cfg.Gemini.APIKeyFile,
		Env:   geminiAPIKeyEnv,
		Value: cfg.Gemini.APIKey,
	})
	if err != nil {
		return nil, err
	}

	aiLogger := logger.WithAIFields(zlog, "gemini", cfg.Gemini.Model)

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries,
		aiLogger.With(zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries)))
	if err != nil {
		return nil, err
	}

	return gemini.NewAnalyzer(generator, cfg.Gemini.MaxLogLength, aiLogger), nil
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("file %q is empty", path)
	}
	return text, nil
}
