package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
)

const (
	SHEETS = "https://www.googleapis.com/auth/spreadsheets"
	DRIVE  = "https://www.googleapis.com/auth/drive"
)

// authorize returns an HTTP client authenticated with a service account key.
func authorize(ctx context.Context, credentials []byte, scopes ...string) (*http.Client, error) {
	config, err := google.JWTConfigFromJSON(credentials, scopes...)
	if err != nil {
		return nil, fmt.Errorf("invalid service account credentials (%w)", err)
	}

	return config.Client(ctx), nil
}

// getCredentials returns the service account key from the --credentials file
// if one was given, otherwise from the GDRIVE_SERVICE_ACCOUNT JSON blob.
func getCredentials(file string, blob string) ([]byte, error) {
	if strings.TrimSpace(file) != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("unable to read credentials file (%w)", err)
		}

		return b, nil
	}

	if strings.TrimSpace(blob) == "" {
		return nil, fmt.Errorf("missing Google credentials - set %v or use --credentials", ENV_CREDENTIALS)
	}

	return []byte(blob), nil
}
