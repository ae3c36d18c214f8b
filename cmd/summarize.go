package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/cv-matcher/internal/logger"
	"github.com/spigell/cv-matcher/internal/payload"
	"github.com/spigell/cv-matcher/internal/report"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <analysis-file>",
	Short: "Build a scorecard from an existing matching analysis (JSON or YAML, '-' for stdin)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		zlog, config := setup()
		defer zlog.Sync()

		format, _ := cmd.Flags().GetString("output")
		if err := summarize(args[0], format, config, zlog, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
			zlog.Fatal("summarizing analysis", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(summarizeCmd)

	summarizeCmd.Flags().StringP("output", "o", report.FormatText, "output format: text or json")
}

func summarize(path, format string, config *Config, zlog *zap.Logger, stdin io.Reader, out io.Writer) error {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("read analysis: %w", err)
	}

	doc, err := payload.Decode(data)
	if err != nil {
		return err
	}

	card := newSummarizer(config.Summary, zlog).BuildScorecard(doc.Candidate, doc.Analysis, commentLength(config.Summary))

	zlog.Info("scorecard built", append(logger.ScorecardFields(card), zap.String(logger.FieldSource, path))...)

	return report.Write(out, card, format)
}
