package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const APP = "contaazul-app-sheets"

var (
	ErrFileNotFound  = errors.New("file not found")
	ErrEmptySource   = errors.New("empty source sheet")
	ErrMissingColumn = errors.New("missing column")
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      "2006-01-02 15:04:05",
})

var spreadsheetURL = regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`)

// gsuite holds the Drive and Sheets services shared by every step of a run.
type gsuite struct {
	drive  *drive.Service
	sheets *sheets.Service
}

func newGSuite(ctx context.Context, credentials []byte) (*gsuite, error) {
	client, err := authorize(ctx, credentials, DRIVE, SHEETS)
	if err != nil {
		return nil, fmt.Errorf("authentication/authorization error (%w)", err)
	}

	d, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create new Drive client (%w)", err)
	}

	s, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%w)", err)
	}

	return &gsuite{
		drive:  d,
		sheets: s,
	}, nil
}

// resolve returns the spreadsheet ID for either a Google Sheets URL or the name
// of a file in the Drive folder.
func (g *gsuite) resolve(ctx context.Context, ref string, folder string) (string, error) {
	ref = strings.TrimSpace(ref)

	if match := spreadsheetURL.FindStringSubmatch(ref); len(match) > 1 && match[1] != "" {
		return match[1], nil
	}

	return g.getFileID(ctx, ref, folder)
}

func (g *gsuite) getFileID(ctx context.Context, name string, folder string) (string, error) {
	q := fmt.Sprintf("name='%v' and '%v' in parents and trashed=false", escape(name), escape(folder))

	list, err := g.drive.Files.List().
		Q(q).
		Spaces("drive").
		Fields("files(id, name)").
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("unable to search Drive folder %v (%w)", folder, err)
	}

	if len(list.Files) == 0 {
		return "", fmt.Errorf("%w: '%v' in folder %v", ErrFileNotFound, name, folder)
	}

	if len(list.Files) > 1 {
		warnf("%v files named '%v' in folder %v, using %v", len(list.Files), name, folder, list.Files[0].Id)
	}

	return list.Files[0].Id, nil
}

func escape(v string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(v)
}

func clean(v string) string {
	return strings.TrimSpace(v)
}

func normalise(v string) string {
	return strings.ToLower(strings.ReplaceAll(v, " ", ""))
}

// tag adds the key/value fields to every subsequent log entry. The returned
// function restores the untagged logger.
func tag(keyvals ...any) func() {
	previous := logger
	logger = logger.With(keyvals...)

	return func() {
		logger = previous
	}
}

func SetDebug(debug bool) {
	if debug {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
}

func debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

func infof(format string, args ...any) {
	logger.Infof(format, args...)
}

func warnf(format string, args ...any) {
	logger.Warnf(format, args...)
}

func errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}
