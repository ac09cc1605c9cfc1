package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/martinsfin/contaazul-app-sheets/commands"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "WARN  could not load .env file (%v)\n", err)
	}

	options := commands.NewOptions()

	cli := &cobra.Command{
		Use:   commands.APP,
		Short: "Copies Conta Azul financial event details to Google Sheets",
		Long: `contaazul-app-sheets reads the financial event IDs from a Google Sheets worksheet, retrieves
the category and cost centre breakdown of each event from the Conta Azul finance API and
replaces the contents of a second worksheet with the flattened rows.

Requires the GDRIVE_SERVICE_ACCOUNT and CONTAAZUL_TOKEN environment variables (or a .env file).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commands.SetDebug(options.Debug)
		},
	}

	cli.PersistentFlags().BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")

	cli.AddCommand(
		commands.PayablesCmd.Command(&options),
		commands.ReceivablesCmd.Command(&options),
		commands.VersionCmd.Command(),
	)

	if err := cli.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
