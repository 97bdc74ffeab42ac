package magiclink

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	got := Generate("https://yourstudio.com/", "Ritz Carlton", "Hospitality", "agent001")

	want := Link{
		Company:    "Ritz Carlton",
		Industry:   "Hospitality",
		Ref:        "agent001",
		FullURL:    "https://yourstudio.com/solutions/hospitality?company=Ritz+Carlton&ref=agent001",
		ShortURL:   "https://yourstudio.com/solutions/hospitality",
		DisplayURL: "yoursite.com/solutions/hospitality?company=Ritz+Carlton&ref=agent001",
		Supported:  true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Generate mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_WithoutRefAndUnsupported(t *testing.T) {
	got := Generate("http://localhost:3000", "Acme & Co", "aerospace", "")

	assert.Equal(t, "http://localhost:3000/solutions/aerospace?company=Acme+%26+Co", got.FullURL)
	assert.False(t, got.Supported)
	assert.Empty(t, got.Ref)
}

func TestParseBatch_JSON(t *testing.T) {
	entries, err := ParseBatch([]byte(`[
		{"company": "Gucci", "industry": "fashion", "ref": "agent001"},
		{"company": "", "industry": "retail"}
	]`), ".json")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	links, skipped := GenerateBatch("https://yourstudio.com", entries)
	require.Len(t, links, 1)
	assert.Equal(t, "Gucci", links[0].Company)
	assert.Equal(t, []Entry{{Industry: "retail"}}, skipped)
}

func TestParseBatch_YAML(t *testing.T) {
	entries, err := ParseBatch([]byte(`
- company: Gucci
  industry: fashion
- company: Ritz Carlton
  industry: hospitality
  ref: agent002
`), ".yml")
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Company: "Gucci", Industry: "fashion"},
		{Company: "Ritz Carlton", Industry: "hospitality", Ref: "agent002"},
	}, entries)
}

func TestParseBatch_RejectsNonArray(t *testing.T) {
	_, err := ParseBatch([]byte(`{"company": "Gucci"}`), ".json")
	assert.EqualError(t, err, "batch file must contain an array of companies")
}

func TestLoadBatchAndWriteJSON(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "companies.json")
	require.NoError(t, os.WriteFile(in, []byte(`[{"company":"Gucci","industry":"fashion"}]`), 0o644))

	entries, err := LoadBatch(in)
	require.NoError(t, err)
	links, _ := GenerateBatch("https://yourstudio.com", entries)

	out := filepath.Join(dir, "out.json")
	require.NoError(t, WriteJSON(out, links))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "https://yourstudio.com/solutions/fashion?company=Gucci", decoded[0]["fullUrl"])

	_, err = LoadBatch(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
