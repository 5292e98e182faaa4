/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package internal

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
)

type Config struct {
	HTTPServerPort    uint16 `json:"http-server-port"`
	ReadTimeout       int64  `json:"read-timeout"`
	WriteTimeout      int64  `json:"write-timeout"`
	DBName            string `json:"db-name"`
	TemplateDirectory string `json:"template-directory"`
	MediaDirectory    string `json:"media-directory"`
	SecretKey         string `json:"secret-key"`
	CacheTTLSeconds   int64  `json:"cache-ttl-seconds"`
	EnableLogging     bool   `json:"enable-logging"`
}

// DefaultConfig is what the application runs with when no .cfg file is present
func DefaultConfig() *Config {
	return &Config{
		HTTPServerPort:    8080,
		ReadTimeout:       10,
		WriteTimeout:      10,
		DBName:            "blog.db",
		TemplateDirectory: "templates",
		MediaDirectory:    "media",
		SecretKey:         "insecure-dev-secret",
		CacheTTLSeconds:   20,
		EnableLogging:     true,
	}
}

// LoadConfig reads folderPath/.cfg, falling back to the defaults when the file
// does not exist
func LoadConfig(folderPath string) (*Config, error) {
	file, err := os.OpenFile(folderPath+"/.cfg", os.O_RDONLY, 0755)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	defer file.Close()

	payload, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err = json.Unmarshal(payload, config); err != nil {
		return nil, err
	}

	return config, nil
}

// RetrieveWebTemplates maps every page template to the file set it is parsed
// with (all the layouts plus the page itself)
func RetrieveWebTemplates(templateDir string) (map[string][]string, error) {

	mapping := make(map[string][]string)

	layoutPath := filepath.Join(templateDir, "layouts")
	layoutFiles, err := filepath.Glob(filepath.Join(layoutPath, "*.html"))
	if err != nil {
		return nil, err
	}

	pageFiles, err := filepath.Glob(filepath.Join(templateDir, "*.html"))
	if err != nil {
		return nil, err
	}

	for _, page := range pageFiles {
		files := append([]string{}, layoutFiles...)
		files = append(files, page)
		mapping[filepath.Base(page)] = files
	}

	return mapping, nil
}
