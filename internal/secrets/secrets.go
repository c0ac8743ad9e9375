// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API keys and credentials from a directory of plain-text files.
// Each file in the directory represents one secret: the filename is the key name and the
// file contents (trimmed) are the value.
//
// Supported key files: google-translate-api-key.
package secrets

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// TranslateAPIKey names the file holding the keyed translation backend's key.
const TranslateAPIKey = "google-translate-api-key"

// Load reads every regular, non-hidden file in dir into a map of filename to
// trimmed contents. A missing directory yields an empty map. Files that cannot
// be read are logged and skipped; empty files are ignored.
func Load(dir string, logger *slog.Logger) (map[string]string, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	loaded := make(map[string]string, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			logger.Warn("could not read secret", "name", name, "error", err)
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			loaded[name] = value
		}
	}
	return loaded, nil
}

// Names returns the loaded key names in order, for logging without values.
func Names(loaded map[string]string) []string {
	names := make([]string, 0, len(loaded))
	for k := range loaded {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
