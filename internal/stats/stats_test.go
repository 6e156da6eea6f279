package stats

import (
	"testing"

	"github.com/bhulekh-dev/bhulekh/internal/aggregate"
)

func str(s string) *string {
	return &s
}

func TestSummarize(t *testing.T) {
	records := []aggregate.RecordView{
		{RaiyatName: "राम", KhesraNumber: "101", Rakwa: str("20")},
		{RaiyatName: "राम", KhesraNumber: "102", Rakwa: str("12.5")},
		{RaiyatName: "श्याम", KhesraNumber: "201", Rakwa: str("abc")},
		{RaiyatName: "श्याम", KhesraNumber: "202", Rakwa: nil},
	}

	summary := Summarize(records)

	if summary.TotalRecords != 4 {
		t.Errorf("TotalRecords = %d, want 4", summary.TotalRecords)
	}
	if summary.TotalRaiyat != 2 {
		t.Errorf("TotalRaiyat = %d, want 2", summary.TotalRaiyat)
	}
	// Garbled and missing areas contribute zero, not an error.
	if summary.TotalArea != 32.5 {
		t.Errorf("TotalArea = %v, want 32.5", summary.TotalArea)
	}
}

func TestSummarizeCountsActiveRaiyatsOnly(t *testing.T) {
	// A raiyat on the roster with no records never appears here: the figure
	// counts names present in records.
	records := []aggregate.RecordView{
		{RaiyatName: "राम", KhesraNumber: "101"},
		{RaiyatName: "", KhesraNumber: "102"},
	}

	summary := Summarize(records)

	if summary.TotalRaiyat != 1 {
		t.Errorf("TotalRaiyat = %d, want 1", summary.TotalRaiyat)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)

	if summary.TotalRecords != 0 || summary.TotalRaiyat != 0 || summary.TotalArea != 0 {
		t.Errorf("Expected zero summary, got %+v", summary)
	}
}

func TestDistribution(t *testing.T) {
	records := []aggregate.RecordView{
		{RaiyatName: "राम", Rakwa: str("30")},
		{RaiyatName: "श्याम", Rakwa: str("10")},
		{RaiyatName: "राम", Rakwa: str("20")},
		{RaiyatName: "मोहन", Rakwa: str("40")},
	}

	shares := Distribution(records)

	if len(shares) != 3 {
		t.Fatalf("Expected 3 shares, got %d", len(shares))
	}

	if shares[0].Name != "राम" || shares[0].Area != 50 || shares[0].Percentage != 50 {
		t.Errorf("राम share = %+v", shares[0])
	}
	if shares[1].Name != "श्याम" || shares[1].Area != 10 || shares[1].Percentage != 10 {
		t.Errorf("श्याम share = %+v", shares[1])
	}
	if shares[2].Name != "मोहन" || shares[2].Area != 40 || shares[2].Percentage != 40 {
		t.Errorf("मोहन share = %+v", shares[2])
	}

	total := 0
	for _, share := range shares {
		total += share.Percentage
	}
	if total < 100-len(shares) || total > 100+len(shares) {
		t.Errorf("Percentages sum %d outside rounding tolerance", total)
	}
}

func TestDistributionZeroTotal(t *testing.T) {
	records := []aggregate.RecordView{
		{RaiyatName: "राम", Rakwa: str("abc")},
		{RaiyatName: "श्याम", Rakwa: nil},
	}

	shares := Distribution(records)

	for _, share := range shares {
		if share.Percentage != 0 {
			t.Errorf("Expected zero percentage for %s, got %d", share.Name, share.Percentage)
		}
	}
}

func TestArea(t *testing.T) {
	cases := []struct {
		in   *string
		want float64
	}{
		{nil, 0},
		{str(""), 0},
		{str("abc"), 0},
		{str("12.5"), 12.5},
		{str(" 7 "), 7},
		{str("0"), 0},
	}

	for _, tc := range cases {
		if got := Area(tc.in); got != tc.want {
			t.Errorf("Area(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
