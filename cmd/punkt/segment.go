package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/az-ai-labs/go-punkt/lang/english"
	"github.com/az-ai-labs/go-punkt/model"
	"github.com/az-ai-labs/go-punkt/sentence"
)

var (
	segmentInput    string
	segmentModel    string
	segmentLanguage string
)

func init() {
	segmentCmd.Flags().StringVar(&segmentInput, "input", "", "path to the text to segment (required)")
	segmentCmd.Flags().StringVar(&segmentModel, "model", "", "path to a trained model.json from punkt train")
	segmentCmd.Flags().StringVar(&segmentLanguage, "language", "", "use a bundled pretrained model instead of --model")
	segmentCmd.MarkFlagRequired("input")
}

var segmentCmd = &cobra.Command{
	Use:   "segment",
	Short: "Split text into sentences using a trained or pretrained model",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := zap.NewDevelopment()
		if err != nil {
			logger = zap.NewNop()
		}
		defer logger.Sync()

		runID := uuid.New().String()
		logger = logger.With(zap.String("run_id", runID))

		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		m, err := resolveModel(logger)
		if err != nil {
			return err
		}

		text, err := os.ReadFile(segmentInput)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		tz := sentence.New(cfg.resolveParams(), m)
		w := bufio.NewWriter(os.Stdout)
		defer w.Flush()

		count := 0
		for s := range tz.All(string(text)) {
			fmt.Fprintln(w, s)
			count++
		}
		logger.Info("segmentation complete", zap.Int("sentences", count))
		return nil
	},
}

func resolveModel(logger *zap.Logger) (*model.Model, error) {
	switch {
	case segmentModel != "":
		logger.Info("loading trained model", zap.String("path", segmentModel))
		return loadModelFile(segmentModel)
	case segmentLanguage != "":
		logger.Info("loading pretrained model", zap.String("language", segmentLanguage))
		if segmentLanguage != "english" {
			return nil, fmt.Errorf("unsupported language %q", segmentLanguage)
		}
		return english.Load()
	default:
		logger.Info("no model specified, segmenting with an empty model")
		return model.New(), nil
	}
}
