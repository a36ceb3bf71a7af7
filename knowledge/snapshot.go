// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package knowledge

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// CacheData is the on-disk shape of the cache snapshot: category name
// to a flat key/value table.
type CacheData map[string]map[string]string

// GraphSnapshot is the on-disk shape of the relationship graph snapshot.
type GraphSnapshot struct {
	Entities struct {
		Departments []DepartmentRecord `json:"departments"`
		Services    []ServiceRecord    `json:"services"`
		Issues      []IssueRecord      `json:"issues"`
	} `json:"entities"`
	Procedures    map[string]ProcedureRecord `json:"procedures"`
	Relationships []RelationshipRecord       `json:"relationships"`
}

type DepartmentRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type ServiceRecord struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
}

type IssueRecord struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Service string `json:"service"`
}

// ProcedureRecord mirrors the snapshot JSON. Fees is mixed-type in the
// source data (flat string, number, or a size-to-amount table), so it
// decodes as any and is rendered to text at load.
type ProcedureRecord struct {
	Title      string   `json:"title"`
	Department string   `json:"department"`
	Steps      []string `json:"steps"`
	Documents  []string `json:"documents"`
	Fees       any      `json:"fees"`
	Timeline   string   `json:"timeline"`
	Contact    string   `json:"contact"`
}

type RelationshipRecord struct {
	From string `json:"from"`
	To   string `json:"to"`
	Type string `json:"type"`
}

// DocumentInput is one source document to chunk and index.
type DocumentInput struct {
	Name string
	Text string
}

func readCacheSnapshot(path string) (CacheData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSnapshotMissing, path)
		}
		return nil, err
	}

	var data CacheData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsing cache snapshot %s: %w", path, err)
	}
	return data, nil
}

func readGraphSnapshot(path string) (*GraphSnapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSnapshotMissing, path)
		}
		return nil, err
	}

	var snap GraphSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("parsing graph snapshot %s: %w", path, err)
	}
	return &snap, nil
}

// readDocuments loads every .txt file in dir, sorted by filename so
// chunk load order is stable across runs.
func readDocuments(dir string) ([]DocumentInput, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSnapshotMissing, dir)
		}
		return nil, err
	}

	var docs []DocumentInput
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		text, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		docs = append(docs, DocumentInput{Name: entry.Name(), Text: string(text)})
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return docs, nil
}

// feesText renders a mixed-type fees value to display text.
func feesText(fees any) string {
	switch v := fees.(type) {
	case nil:
		return "N/A"
	case string:
		return v
	case float64:
		return fmt.Sprintf("₹%d", int(v))
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s: %s", k, feesText(v[k])))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", v)
	}
}
