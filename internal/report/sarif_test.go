package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/snipcheck/snipcheck/internal/types"
)

func TestWriteSARIF(t *testing.T) {
	var buf bytes.Buffer
	missing := []types.Example{
		{ID: "deadbeefdeadbeef", Path: "docs/guide.md", Line: 12, Text: "let a = 1;"},
	}
	if err := WriteSARIF(&buf, "0.1.0", missing); err != nil {
		t.Fatal(err)
	}

	var doc struct {
		Version string `json:"version"`
		Runs    []struct {
			Tool struct {
				Driver struct {
					Name string `json:"name"`
				} `json:"driver"`
			} `json:"tool"`
			Results []struct {
				RuleID    string `json:"ruleId"`
				Level     string `json:"level"`
				Locations []struct {
					PhysicalLocation struct {
						ArtifactLocation struct {
							URI string `json:"uri"`
						} `json:"artifactLocation"`
						Region struct {
							StartLine int `json:"startLine"`
						} `json:"region"`
					} `json:"physicalLocation"`
				} `json:"locations"`
			} `json:"results"`
		} `json:"runs"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid SARIF JSON: %v", err)
	}
	if doc.Version != "2.1.0" {
		t.Fatalf("version = %s", doc.Version)
	}
	if len(doc.Runs) != 1 || doc.Runs[0].Tool.Driver.Name != "snipcheck" {
		t.Fatalf("unexpected tool block: %+v", doc.Runs)
	}
	res := doc.Runs[0].Results
	if len(res) != 1 || res[0].RuleID != "missing-example" || res[0].Level != "error" {
		t.Fatalf("unexpected results: %+v", res)
	}
	loc := res[0].Locations[0].PhysicalLocation
	if loc.ArtifactLocation.URI != "docs/guide.md" || loc.Region.StartLine != 12 {
		t.Fatalf("unexpected location: %+v", loc)
	}
}

func TestWriteSARIF_EmptyRun(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSARIF(&buf, "0.1.0", nil); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"2.1.0"`)) {
		t.Fatalf("expected valid empty run: %s", buf.String())
	}
}
