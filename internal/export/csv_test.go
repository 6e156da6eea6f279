package export

import (
	"strings"
	"testing"

	"github.com/bhulekh-dev/bhulekh/internal/aggregate"
)

func str(s string) *string {
	return &s
}

func TestCSVHeaderAndRows(t *testing.T) {
	project := &aggregate.ProjectView{
		Name: "Test",
		LandRecords: []aggregate.RecordView{
			{
				RaiyatName:      "राम कुमार",
				JamabandiNumber: str("12"),
				KhesraNumber:    "101",
				Rakwa:           str("20"),
				Uttar:           str("सड़क"),
			},
			{
				RaiyatName:   "सुरेश यादव",
				KhesraNumber: "201",
			},
		},
	}

	out := CSV(project)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	if len(lines) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d lines", len(lines))
	}

	if lines[0] != strings.Join(Header, ",") {
		t.Errorf("Unexpected header: %q", lines[0])
	}

	if lines[1] != `"राम कुमार","12","","101","20","सड़क","","","",""` {
		t.Errorf("Unexpected first row: %q", lines[1])
	}

	// Absent optionals render as quoted empty fields.
	if lines[2] != `"सुरेश यादव","","","201","","","","","",""` {
		t.Errorf("Unexpected second row: %q", lines[2])
	}
}

func TestCSVEscapesQuotes(t *testing.T) {
	project := &aggregate.ProjectView{
		LandRecords: []aggregate.RecordView{
			{
				RaiyatName:   "राम",
				KhesraNumber: "101",
				Remarks:      str(`कहा "विवादित" है`),
			},
		},
	}

	out := CSV(project)

	if !strings.Contains(out, `"कहा ""विवादित"" है"`) {
		t.Errorf("Inner quotes not doubled: %q", out)
	}
}

func TestCSVRoundTripPairs(t *testing.T) {
	project := &aggregate.ProjectView{
		LandRecords: []aggregate.RecordView{
			{RaiyatName: "राम", KhesraNumber: "101"},
			{RaiyatName: "राम", KhesraNumber: "102"},
			{RaiyatName: "श्याम", KhesraNumber: "101"},
		},
	}

	out := CSV(project)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")[1:]

	// Re-reading the rows reproduces the same (raiyat, khesra) pairs.
	type pair struct{ raiyat, khesra string }
	seen := make(map[pair]bool)

	for _, line := range lines {
		fields := strings.Split(line, ",")
		unquote := func(s string) string {
			return strings.ReplaceAll(strings.Trim(s, `"`), `""`, `"`)
		}
		seen[pair{unquote(fields[0]), unquote(fields[3])}] = true
	}

	for _, record := range project.LandRecords {
		if !seen[pair{record.RaiyatName, record.KhesraNumber}] {
			t.Errorf("Pair (%s, %s) lost in round trip", record.RaiyatName, record.KhesraNumber)
		}
	}

	if len(seen) != len(project.LandRecords) {
		t.Errorf("Expected %d distinct pairs, got %d", len(project.LandRecords), len(seen))
	}
}
