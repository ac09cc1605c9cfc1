package commands

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/sheets/v4"
)

// updater is the subset of the Sheets values API used to publish a table.
type updater interface {
	Clear(ctx context.Context, ranges ...string) error
	Update(ctx context.Context, area string, rows [][]any) error
}

// worksheet addresses ranges on a single tab of a spreadsheet. An empty tab
// addresses the first sheet.
type worksheet struct {
	google      *sheets.Service
	spreadsheet string
	tab         string
}

func (w *worksheet) Clear(ctx context.Context, ranges ...string) error {
	rq := sheets.BatchClearValuesRequest{
		Ranges: []string{},
	}

	for _, r := range ranges {
		rq.Ranges = append(rq.Ranges, qualify(w.tab, r))
	}

	if _, err := w.google.Spreadsheets.Values.BatchClear(w.spreadsheet, &rq).Context(ctx).Do(); err != nil {
		return err
	}

	return nil
}

func (w *worksheet) Update(ctx context.Context, area string, rows [][]any) error {
	values := sheets.ValueRange{
		Values: rows,
	}

	if _, err := w.google.Spreadsheets.Values.Update(w.spreadsheet, qualify(w.tab, area), &values).
		ValueInputOption("RAW").
		Context(ctx).
		Do(); err != nil {
		return err
	}

	return nil
}

func qualify(tab string, area string) string {
	if strings.TrimSpace(tab) == "" {
		return area
	}

	return fmt.Sprintf("'%v'!%v", strings.ReplaceAll(tab, "'", "''"), area)
}
