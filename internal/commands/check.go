package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/remessa-dev/remessa/internal/config"
	"github.com/remessa-dev/remessa/internal/model"
	"github.com/remessa-dev/remessa/internal/payees"
)

func newCheckCommand() *cobra.Command {
	var configPath string
	var payeesPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a payee file without generating anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(configPath, payeesPath, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "remessa.yaml", "payer configuration file")
	cmd.Flags().StringVar(&payeesPath, "payees", "", "payee CSV file (required)")
	_ = cmd.MarkFlagRequired("payees")

	return cmd
}

// runCheck prints the full defect report. Rejected records are data, not
// failure: the command only errors on I/O problems.
func runCheck(configPath, payeesPath string, out io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	list, err := loadPayees(payeesPath)
	if err != nil {
		return err
	}

	part := payees.PartitionAll(list, cfg.Payer.BankCode)

	fmt.Fprintf(out, "%d of %d payees pass validation\n", part.ValidCount, part.TotalCount)
	for _, pe := range part.Invalid {
		fmt.Fprintf(out, "\n%s (%s):\n", pe.Payee.Name, pe.Payee.TaxID)
		for _, fe := range pe.Errors {
			fmt.Fprintf(out, "  - %s\n", fe.Error())
		}
	}
	return nil
}

func loadPayees(path string) ([]model.Payee, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening payees: %w", err)
	}
	defer f.Close()
	return payees.ReadPayees(f)
}
