package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/remessa-dev/remessa/internal/cnab"
	"github.com/remessa-dev/remessa/internal/config"
	"github.com/remessa-dev/remessa/internal/payees"
	"github.com/remessa-dev/remessa/internal/seqstore"
)

const paymentDateFormat = "2006-01-02"

func newGenerateCommand() *cobra.Command {
	var configPath string
	var payeesPath string
	var dateStr string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a remittance file from a payee CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			date := time.Now()
			if dateStr != "" {
				var err error
				date, err = time.Parse(paymentDateFormat, dateStr)
				if err != nil {
					return fmt.Errorf("parsing --date %q: %w", dateStr, err)
				}
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			baseDir := filepath.Dir(configPath)
			store := seqstore.NewFileStore(filepath.Join(baseDir, cfg.Output.CounterFile))
			outDir := filepath.Join(baseDir, cfg.Output.Dir)

			_, err = runGenerate(cfg, payeesPath, outDir, date, time.Now(), store, cmd.OutOrStdout())
			return err
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "remessa.yaml", "payer configuration file")
	cmd.Flags().StringVar(&payeesPath, "payees", "", "payee CSV file (required)")
	cmd.Flags().StringVar(&dateStr, "date", "", "payment date (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("payees")

	return cmd
}

// runGenerate drives the whole flow: read, partition, draw counters,
// encode, write. It returns the path of the written file.
func runGenerate(cfg *config.Config, payeesPath, outDir string, paymentDate, now time.Time, store seqstore.Store, out io.Writer) (string, error) {
	list, err := loadPayees(payeesPath)
	if err != nil {
		return "", err
	}
	if len(list) == 0 {
		return "", fmt.Errorf("payee file %s is empty", payeesPath)
	}

	part := payees.PartitionAll(list, cfg.Payer.BankCode)
	if part.ValidCount == 0 {
		return "", fmt.Errorf("all %d payees failed validation; run check for the defect report", part.TotalCount)
	}

	fileSeq, err := store.NextFileSequence()
	if err != nil {
		return "", err
	}
	docSeed, err := store.ReserveDocuments(part.ValidCount)
	if err != nil {
		return "", err
	}

	payer := cfg.PayerProfile()
	payer.PaymentDate = paymentDate

	res, err := cnab.Generate(payer, part.Valid, cnab.Options{
		Now:          now,
		FileSequence: fileSeq,
		DocumentSeed: docSeed,
	})
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	outPath := filepath.Join(outDir, remittanceFileName(paymentDate, fileSeq))
	if err := os.WriteFile(outPath, res.Bytes, 0o644); err != nil {
		return "", fmt.Errorf("writing remittance file: %w", err)
	}

	slog.Info("remittance file generated",
		"path", outPath,
		"sequence", fileSeq,
		"batches", res.Batches,
		"payees", res.Payees,
		"total", res.Total.StringFixed(2))

	fmt.Fprintf(out, "Wrote %s: %d payees in %d batches, total %s\n",
		outPath, res.Payees, res.Batches, res.Total.StringFixed(2))
	if len(part.Invalid) > 0 {
		fmt.Fprintf(out, "Excluded %d invalid payees; run check for the defect report\n", len(part.Invalid))
	}
	return outPath, nil
}

// remittanceFileName builds the sequence-numbered artifact name, e.g.
// PAG_20250115_01.rem.
func remittanceFileName(date time.Time, seq int) string {
	return fmt.Sprintf("PAG_%s_%02d.rem", date.Format("20060102"), seq)
}
