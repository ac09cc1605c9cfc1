package commands

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/martinsfin/contaazul-app-sheets/events"
)

const (
	BATCH_SIZE       = 1000
	RETRY_BATCH_SIZE = 500

	MIN_COLUMNS = 26
)

type summary struct {
	written int
	dropped int
}

// upload replaces the worksheet contents with the table. The header is written
// to row 1 and the records in batches from row 2. A batch that fails is retried
// once as smaller batches, and a retry batch that also fails is logged and
// skipped. Only a failure to clear the sheet or write the header is returned.
func upload(ctx context.Context, sheet updater, table *events.Table, batchSize, retrySize int) (summary, error) {
	s := summary{}

	area, err := span(len(table.Header))
	if err != nil {
		return s, err
	}

	infof("Clearing worksheet range %v", area)
	if err := sheet.Clear(ctx, area); err != nil {
		return s, fmt.Errorf("unable to clear worksheet (%w)", err)
	}

	if len(table.Header) > 0 {
		if err := sheet.Update(ctx, "A1", values([][]string{table.Header})); err != nil {
			return s, fmt.Errorf("unable to write header row (%w)", err)
		}

		infof("Header written (%v columns)", len(table.Header))
	}

	records := table.Records
	for i := 0; i < len(records); i += batchSize {
		batch := records[i:min(i+batchSize, len(records))]
		row := i + 2

		err := sheet.Update(ctx, fmt.Sprintf("A%v", row), values(batch))
		if err == nil {
			infof("Batch %v written: rows %v to %v", i/batchSize+1, row, row+len(batch)-1)
			s.written += len(batch)
			continue
		}

		errorf("Batch %v failed (%v)", i/batchSize+1, err)

		for j := 0; j < len(batch); j += retrySize {
			retry := batch[j:min(j+retrySize, len(batch))]
			start := row + j

			if err := sheet.Update(ctx, fmt.Sprintf("A%v", start), values(retry)); err != nil {
				errorf("Retry batch failed: rows %v to %v not written (%v)", start, start+len(retry)-1, err)
				s.dropped += len(retry)
			} else {
				infof("Retry batch written: rows %v to %v", start, start+len(retry)-1)
				s.written += len(retry)
			}
		}
	}

	return s, nil
}

// span returns the column range to clear, A:Z or wider if the table has more
// than 26 columns.
func span(columns int) (string, error) {
	right, err := excelize.ColumnNumberToName(max(columns, MIN_COLUMNS))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("A:%v", right), nil
}

func values(records [][]string) [][]any {
	rows := make([][]any, len(records))
	for i, record := range records {
		row := make([]any, len(record))
		for j, v := range record {
			row[j] = v
		}

		rows[i] = row
	}

	return rows
}
