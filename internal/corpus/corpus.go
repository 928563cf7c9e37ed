// Package corpus loads batches of input records from JSONL files.
package corpus

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
)

// Record is one input document: a short title and/or content body.
type Record struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Text returns the record's analyzable text: title and content joined
// by a newline, either side may be empty.
func (r Record) Text() string {
	switch {
	case r.Title == "":
		return r.Content
	case r.Content == "":
		return r.Title
	}
	return r.Title + "\n" + r.Content
}

// LoadFromJSONL loads records from a JSONL file. Malformed lines are
// skipped with a warning rather than failing the batch.
func LoadFromJSONL(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	var records []Record
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var rec Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			log.Printf("Warning: skipping malformed JSON at line %d in %s: %v", i+1, path, err)
			continue
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no valid records found in %s", path)
	}

	return records, nil
}
