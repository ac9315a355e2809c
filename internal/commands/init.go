package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/remessa-dev/remessa/internal/config"
	"github.com/remessa-dev/remessa/internal/model"
	"github.com/remessa-dev/remessa/internal/payees"
)

func newInitCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a remittance working directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "payer company name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runInit(dir, name string, out io.Writer) error {
	if err := os.MkdirAll(filepath.Join(dir, "out"), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	configPath := filepath.Join(dir, "remessa.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists", configPath)
	}
	if err := config.Save(configPath, config.Default(name)); err != nil {
		return err
	}

	// A sample payee file showing the expected columns; agency/account
	// carry their check digits in the "-D" form.
	samplePath := filepath.Join(dir, "payees-sample.csv")
	f, err := os.Create(samplePath)
	if err != nil {
		return fmt.Errorf("creating sample payees: %w", err)
	}
	defer f.Close()

	sample := []model.Payee{
		{
			Name:        "Joao Silva",
			TaxID:       "529.982.247-25",
			BankCode:    "001",
			Agency:      "1234-3",
			Account:     "123456-0",
			AccountType: model.AccountTypeChecking,
			Value:       "150.00",
		},
		{
			Name:        "Fornecedora Exemplo SA",
			TaxID:       "11.444.777/0001-61",
			BankCode:    "237",
			Agency:      "1525",
			Account:     "87963-1",
			AccountType: model.AccountTypeTED,
			Value:       "2750.10",
		},
	}
	if err := payees.WritePayees(f, sample); err != nil {
		return err
	}

	fmt.Fprintf(out, "Initialized %s\n", dir)
	fmt.Fprintf(out, "Edit remessa.yaml with the payer profile, then run: remessa generate --payees payees-sample.csv\n")
	return nil
}
