package commands

import (
	"os"
	"strings"

	"github.com/martinsfin/contaazul-app-sheets/contaazul"
)

const (
	ENV_CREDENTIALS = "GDRIVE_SERVICE_ACCOUNT"
	ENV_FOLDER      = "GDRIVE_FOLDER_ID"
	ENV_TOKEN       = "CONTAAZUL_TOKEN"
	ENV_URL         = "CONTAAZUL_URL"
	ENV_USER_AGENT  = "CONTAAZUL_USER_AGENT"

	DEFAULT_FOLDER = "1NmHSga-UCUycinn2RMKviwM1XX_Mr5AR"
)

// Options holds the settings shared by all commands. Values come from the
// environment (optionally via a .env file) and can be overridden on the
// command line.
type Options struct {
	Debug       bool
	Credentials string
	Folder      string
	Token       string
	URL         string
	UserAgent   string
}

func NewOptions() Options {
	return Options{
		Debug:       false,
		Credentials: os.Getenv(ENV_CREDENTIALS),
		Folder:      getenv(ENV_FOLDER, DEFAULT_FOLDER),
		Token:       os.Getenv(ENV_TOKEN),
		URL:         getenv(ENV_URL, contaazul.DEFAULT_URL),
		UserAgent:   getenv(ENV_USER_AGENT, contaazul.DEFAULT_USER_AGENT),
	}
}

func getenv(key, defval string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}

	return defval
}
