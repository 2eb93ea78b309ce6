package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/az-ai-labs/go-punkt/model"
	"github.com/az-ai-labs/go-punkt/train"
)

var (
	trainInput  string
	trainOutput string
)

func init() {
	trainCmd.Flags().StringVar(&trainInput, "input", "", "path to the training corpus (required)")
	trainCmd.Flags().StringVar(&trainOutput, "output", "model.json", "path to write the trained model")
	trainCmd.MarkFlagRequired("input")
}

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train an abbreviation/collocation/sentence-starter model from a corpus",
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

		text, err := os.ReadFile(trainInput)
		if err != nil {
			return fmt.Errorf("read corpus: %w", err)
		}

		logger.Info("training started",
			zap.String("input", trainInput),
			zap.Int("bytes", len(text)),
		)

		m := model.New()
		tr := train.New(cfg.resolveParams())
		tr.Train(string(text), m)

		if err := saveModel(trainOutput, m); err != nil {
			return fmt.Errorf("save model: %w", err)
		}

		logger.Info("training complete",
			zap.String("output", trainOutput),
			zap.Int("abbreviations", len(m.Abbreviations)),
			zap.Int("collocations", len(m.Collocations)),
			zap.Int("sentence_starters", len(m.SentenceStarters)),
		)
		return nil
	},
}
