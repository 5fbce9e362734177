package config

import (
	"bufio"
	"os"
	"strings"
)

// loadEnvFiles loads KEY=VALUE pairs from the given files if they exist.
// Values already present in the environment win over file values, so real
// deployment config cannot be shadowed by a stale .env. Best-effort for
// local development; errors are ignored.
func loadEnvFiles(paths ...string) {
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			line = strings.TrimPrefix(line, "export ")
			key, val, ok := strings.Cut(line, "=")
			if !ok {
				continue
			}
			key = strings.TrimSpace(key)
			val = strings.TrimSpace(val)
			val = strings.Trim(val, `"'`)
			if key == "" || os.Getenv(key) != "" {
				continue
			}
			os.Setenv(key, val)
		}
		_ = f.Close()
	}
}
