package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const defaultSensitive = "authorization,proxy-authorization,cookie,set-cookie"

type config struct {
	manifest       string
	sensitiveNames []string
	strictText     bool
	color          ColorMode

	logLevel  string
	logFormat string
}

func parse() (*config, error) {
	color, err := parseColor()
	if err != nil {
		return nil, err
	}

	logFormat, err := parseLogFormat()
	if err != nil {
		return nil, err
	}

	return &config{
		manifest:       getenv("HTTPLINT_MANIFEST", "httplint.toml"),
		sensitiveNames: parseList(getenv("HTTPLINT_SENSITIVE", defaultSensitive)),
		strictText:     getenvBool("HTTPLINT_STRICT_TEXT", false),
		color:          color,
		logLevel:       strings.ToLower(getenv("LOG_LEVEL", "info")),
		logFormat:      logFormat,
	}, nil
}

func loadEnvFile() error {
	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load(".env")
	}
	return nil
}

func parseColor() (ColorMode, error) {
	switch strings.ToLower(getenv("HTTPLINT_COLOR", "auto")) {
	case "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return 0, fmt.Errorf("invalid HTTPLINT_COLOR value")
	}
}

func parseLogFormat() (string, error) {
	switch f := strings.ToLower(getenv("LOG_FORMAT", "console")); f {
	case "json", "console":
		return f, nil
	default:
		return "", fmt.Errorf("invalid LOG_FORMAT value")
	}
}

func parseList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, strings.ToLower(part))
		}
	}
	return out
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val == "true"
}
