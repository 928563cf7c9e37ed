// Package config loads pipeline configuration files: the main YAML
// settings, the stopword list and the custom phrase dictionary.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/keyphrase/pkg/keyphrase/internalerr"
)

// Pipeline is the main extraction configuration.
type Pipeline struct {
	Language       string `yaml:"language"`
	MaxNgram       int    `yaml:"max_ngram"`
	TopK           int    `yaml:"top_k"`
	Workers        int    `yaml:"workers"`
	HashtagSpacing bool   `yaml:"hashtag_spacing"`
}

// LoadPipeline loads pipeline settings from a YAML file.
func LoadPipeline(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p Pipeline
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if p.Language == "" {
		return nil, fmt.Errorf("%w: language is required", internalerr.ErrInvalidConfig)
	}
	if p.MaxNgram < 1 {
		p.MaxNgram = 1
	}
	return &p, nil
}

// Stoplist is the stopword list configuration.
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file.
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, err
	}

	return &sl, nil
}

// LoadDict loads the custom phrase dictionary.
// Format: one entry per line, "phrase|weight"; the weight is optional
// and defaults to zero. Blank lines and #-comments are skipped.
func LoadDict(path string) (map[string]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	dict := make(map[string]float64)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "|", 2)
		phrase := strings.TrimSpace(parts[0])
		if phrase == "" {
			continue
		}

		weight := 0.0
		if len(parts) == 2 {
			w, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
			if err == nil {
				weight = w
			}
		}
		dict[phrase] = weight
	}

	return dict, nil
}
