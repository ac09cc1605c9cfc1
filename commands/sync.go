package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/martinsfin/contaazul-app-sheets/contaazul"
	"github.com/martinsfin/contaazul-app-sheets/events"
)

const SOURCE_RANGE = "A:Z"

var PayablesCmd = Sync{
	name:        "payables",
	description: "Copies the category and cost centre detail of accounts payable to a Google Sheets worksheet",
	input:       "Financeiro_contas_a_pagar_Martins",
	output:      "Detalhe_centro_pagamento",
	fallback:    events.DynamicSchema,
	workers:     contaazul.DEFAULT_WORKERS,
	timeout:     contaazul.DEFAULT_TIMEOUT,
}

var ReceivablesCmd = Sync{
	name:        "receivables",
	description: "Copies the category detail of accounts receivable to a Google Sheets worksheet",
	input:       "Financeiro_contas_a_receber_Martins",
	output:      "Detalhe_centro_recebimento",
	fallback:    events.ReceivablesSchema,
	workers:     contaazul.DEFAULT_WORKERS,
	timeout:     contaazul.DEFAULT_TIMEOUT,
}

// Sync reads the financial event IDs from an input spreadsheet, retrieves the
// summary for each event and replaces the contents of the output spreadsheet
// with the flattened category ratios.
type Sync struct {
	name        string
	description string
	credentials string
	input       string
	output      string
	inputTab    string
	outputTab   string
	schema      string
	fallback    events.Schema
	workers     int
	timeout     time.Duration
	file        string
	dryrun      bool
}

func (cmd *Sync) Command(options *Options) *cobra.Command {
	c := &cobra.Command{
		Use:   cmd.name,
		Short: cmd.description,
		Long: fmt.Sprintf(`%v.

The input spreadsheet must have a header row with a '%v' column. Spreadsheets
can be identified by name (in the Drive folder) or by URL.`, cmd.description, EVENT_ID),
		Example: fmt.Sprintf(`  %v %v
  %v --debug %v --input "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" --dryrun --file detalhe.xlsx`,
			APP, cmd.name, APP, cmd.name),
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return cmd.Execute(c.Context(), options)
		},
	}

	flagset := c.Flags()

	flagset.StringVar(&cmd.credentials, "credentials", cmd.credentials, fmt.Sprintf("Service account credentials file (defaults to the %v JSON)", ENV_CREDENTIALS))
	flagset.StringVar(&cmd.input, "input", cmd.input, "Input spreadsheet name or URL")
	flagset.StringVar(&cmd.output, "output", cmd.output, "Output spreadsheet name or URL")
	flagset.StringVar(&options.Folder, "folder", options.Folder, "Google Drive folder ID for spreadsheet names")
	flagset.StringVar(&cmd.inputTab, "input-tab", cmd.inputTab, "Input worksheet (tab) name. Defaults to the first worksheet")
	flagset.StringVar(&cmd.outputTab, "output-tab", cmd.outputTab, "Output worksheet (tab) name. Defaults to the first worksheet")
	flagset.StringVar(&cmd.schema, "schema", cmd.schema, "Output columns: 'dynamic' (all columns found) or 'fixed'")
	flagset.IntVar(&cmd.workers, "workers", cmd.workers, "Maximum number of concurrent API requests")
	flagset.DurationVar(&cmd.timeout, "timeout", cmd.timeout, "API request timeout")
	flagset.StringVar(&cmd.file, "file", cmd.file, "Also saves the output table to a local .tsv or .xlsx file")
	flagset.BoolVar(&cmd.dryrun, "dryrun", cmd.dryrun, "Retrieves and flattens the events without updating the output spreadsheet")

	return c
}

func (cmd *Sync) Execute(ctx context.Context, options *Options) error {
	if err := cmd.validate(options); err != nil {
		return err
	}

	schema, err := events.ParseSchema(cmd.schema, cmd.fallback)
	if err != nil {
		return err
	}

	credentials, err := getCredentials(cmd.credentials, options.Credentials)
	if err != nil {
		return err
	}

	restore := tag("run", uuid.NewString(), "pipeline", cmd.name)
	defer restore()

	google, err := newGSuite(ctx, credentials)
	if err != nil {
		return err
	}

	input, err := google.resolve(ctx, cmd.input, options.Folder)
	if err != nil {
		return err
	}

	output := ""
	if !cmd.dryrun {
		if output, err = google.resolve(ctx, cmd.output, options.Folder); err != nil {
			return err
		}
	}

	debugf("Spreadsheets - input:%v (%v)  output:%v (%v)", input, cmd.inputTab, output, cmd.outputTab)

	ids, err := readEventIDs(ctx, google, input, qualify(cmd.inputTab, SOURCE_RANGE))
	if err != nil {
		return err
	}

	infof("Loaded %v unique event IDs from %v", len(ids), cmd.input)

	client := contaazul.NewClient(options.URL, options.Token, options.UserAgent, cmd.timeout, cmd.workers, logger)
	table, failures := collect(ctx, client, ids, schema)

	if len(failures) > 0 {
		list := []string{}
		for _, f := range failures {
			list = append(list, f.ID)
		}

		warnf("%v events could not be retrieved: %v", len(failures), strings.Join(list, ", "))
	}

	infof("Assembled %v rows x %v columns", len(table.Records), len(table.Header))

	if cmd.file != "" {
		if err := export(cmd.file, table); err != nil {
			return err
		}

		infof("Saved output table to %v", cmd.file)
	}

	if cmd.dryrun {
		infof("Dry run - output spreadsheet not updated")
		return nil
	}

	sheet := worksheet{
		google:      google.sheets,
		spreadsheet: output,
		tab:         cmd.outputTab,
	}

	s, err := upload(ctx, &sheet, table, BATCH_SIZE, RETRY_BATCH_SIZE)
	if err != nil {
		return err
	}

	if s.dropped > 0 {
		warnf("Updated %v: %v rows written, %v rows not written", cmd.output, s.written, s.dropped)
	} else {
		infof("Updated %v: %v rows written", cmd.output, s.written)
	}

	return nil
}

func (cmd *Sync) validate(options *Options) error {
	if strings.TrimSpace(options.Token) == "" {
		return fmt.Errorf("missing Conta Azul API token - set %v", ENV_TOKEN)
	}

	if strings.TrimSpace(cmd.input) == "" {
		return fmt.Errorf("--input is a required option")
	}

	if strings.TrimSpace(cmd.output) == "" && !cmd.dryrun {
		return fmt.Errorf("--output is a required option")
	}

	if strings.TrimSpace(options.Folder) == "" {
		return fmt.Errorf("--folder is a required option")
	}

	if cmd.workers < 1 {
		return fmt.Errorf("invalid --workers %v - expected at least 1", cmd.workers)
	}

	return nil
}

// collect retrieves the event summaries and assembles the flattened rows into
// the output table. Rows are in the order the summaries were received.
func collect(ctx context.Context, client *contaazul.Client, ids []string, schema events.Schema) (*events.Table, []contaazul.Failure) {
	infof("Retrieving %v event summaries", len(ids))

	details, failures := client.FetchAll(ctx, ids)

	rows := []events.Row{}
	for _, d := range details {
		rows = append(rows, events.Flatten(d.Record, d.ID)...)
	}

	infof("Retrieved %v event summaries (%v rows, %v failed)", len(details), len(rows), len(failures))

	return events.Assemble(rows, schema), failures
}
