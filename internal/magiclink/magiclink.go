package magiclink

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"studio-site/internal/catalog"

	"gopkg.in/yaml.v3"
)

// DisplayHost replaces the site base URL in links pasted into email templates
const DisplayHost = "yoursite.com"

// Link is one generated campaign URL
type Link struct {
	Company    string `json:"company"`
	Industry   string `json:"industry"`
	Ref        string `json:"ref,omitempty"`
	FullURL    string `json:"fullUrl"`
	ShortURL   string `json:"shortUrl"`
	DisplayURL string `json:"displayUrl"`
	Supported  bool   `json:"supported"`
}

// Entry is one row of a batch file
type Entry struct {
	Company  string `json:"company" yaml:"company"`
	Industry string `json:"industry" yaml:"industry"`
	Ref      string `json:"ref,omitempty" yaml:"ref,omitempty"`
}

// Valid reports whether the entry has the fields a link needs
func (e Entry) Valid() bool {
	return strings.TrimSpace(e.Company) != "" && strings.TrimSpace(e.Industry) != ""
}

// Generate builds the personalized landing URL for a company
func Generate(baseURL, company, industry, ref string) Link {
	base := strings.TrimRight(baseURL, "/")
	key := strings.ToLower(strings.TrimSpace(industry))

	params := url.Values{}
	params.Set("company", company)
	if ref != "" {
		params.Set("ref", ref)
	}

	short := fmt.Sprintf("%s/solutions/%s", base, url.PathEscape(key))
	full := short + "?" + params.Encode()

	return Link{
		Company:    company,
		Industry:   industry,
		Ref:        ref,
		FullURL:    full,
		ShortURL:   short,
		DisplayURL: strings.Replace(full, base, DisplayHost, 1),
		Supported:  catalog.IsSupportedIndustry(key),
	}
}

// LoadBatch reads a JSON or YAML (.yaml, .yml) array of entries
func LoadBatch(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}

	return ParseBatch(data, filepath.Ext(path))
}

// ParseBatch decodes entries; ext selects YAML for .yaml/.yml, JSON otherwise
func ParseBatch(data []byte, ext string) ([]Entry, error) {
	var entries []Entry

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("batch file must contain an array of companies: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &entries); err != nil {
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) {
				return nil, errors.New("batch file must contain an array of companies")
			}
			return nil, fmt.Errorf("parse batch file: %w", err)
		}
	}

	return entries, nil
}

// GenerateBatch builds links for the valid entries and returns the skipped ones
func GenerateBatch(baseURL string, entries []Entry) (links []Link, skipped []Entry) {
	for _, e := range entries {
		if !e.Valid() {
			skipped = append(skipped, e)
			continue
		}
		links = append(links, Generate(baseURL, e.Company, e.Industry, e.Ref))
	}
	return links, skipped
}

// WriteJSON saves links as indented JSON
func WriteJSON(path string, links []Link) error {
	data, err := json.MarshalIndent(links, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
