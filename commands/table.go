package commands

import (
	"context"
	"fmt"

	"github.com/martinsfin/contaazul-app-sheets/events"
)

const EVENT_ID = "financialEvent.id"

func readEventIDs(ctx context.Context, g *gsuite, spreadsheet string, area string) ([]string, error) {
	response, err := g.sheets.Spreadsheets.Values.Get(spreadsheet, area).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve data from sheet (%w)", err)
	}

	table, err := makeTable(response.Values)
	if err != nil {
		return nil, err
	}

	return eventIDs(table)
}

// makeTable converts worksheet values into a table, padding short rows to the
// width of the header row.
func makeTable(rows [][]any) (*events.Table, error) {
	if len(rows) == 0 {
		return nil, ErrEmptySource
	}

	header := []string{}
	for _, v := range rows[0] {
		header = append(header, clean(fmt.Sprintf("%v", v)))
	}

	records := [][]string{}
	for _, row := range rows[1:] {
		record := make([]string, 0, len(header))
		for _, v := range row {
			record = append(record, fmt.Sprintf("%v", v))
		}

		for len(record) < len(header) {
			record = append(record, "")
		}

		records = append(records, record)
	}

	return &events.Table{
		Header:  header,
		Records: records,
	}, nil
}

// eventIDs returns the distinct, non-empty financial event IDs in the order
// they first appear.
func eventIDs(table *events.Table) ([]string, error) {
	column := -1
	for i, h := range table.Header {
		if normalise(h) == normalise(EVENT_ID) {
			column = i
			break
		}
	}

	if column < 0 {
		return nil, fmt.Errorf("%w '%v'", ErrMissingColumn, EVENT_ID)
	}

	ids := []string{}
	seen := map[string]bool{}

	for _, record := range table.Records {
		id := clean(record[column])
		if id != "" && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	return ids, nil
}
