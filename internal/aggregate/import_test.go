package aggregate

import (
	"strings"
	"testing"
)

func TestImportPartialSuccess(t *testing.T) {
	gdb := setupTestDB(t)
	ownerID, view := seedProject(t, gdb)
	ram := raiyatID(t, view, "राम कुमार")

	// Row 3 duplicates this pre-existing parcel.
	if _, err := CreateRecord(gdb, ownerID, view.ID, CreateRecordInput{RaiyatID: ram, KhesraNumber: "103"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	rows := []ImportRow{
		{RaiyatName: "राम कुमार", KhesraNumber: "101", Rakwa: "10"},
		{RaiyatName: "राम कुमार", KhesraNumber: "102", Rakwa: 12.5},
		{RaiyatName: "राम कुमार", KhesraNumber: "103"},
		{RaiyatName: "सुरेश यादव", KhesraNumber: "201"},
		{RaiyatName: "नया रैयत", KhesraNumber: "301"},
	}

	result, err := ImportRecords(gdb, ownerID, view.ID, rows)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if result.CreatedCount != 4 {
		t.Errorf("Expected 4 created, got %d", result.CreatedCount)
	}
	if result.ErrorCount != 1 {
		t.Errorf("Expected 1 error, got %d", result.ErrorCount)
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "पंक्ति 3") {
		t.Errorf("Expected row 3 error, got %v", result.Errors)
	}

	// 1 pre-existing plus 4 imported.
	if len(result.Project.LandRecords) != 5 {
		t.Errorf("Expected 5 records in aggregate, got %d", len(result.Project.LandRecords))
	}
}

func TestImportAutoCreatesRaiyat(t *testing.T) {
	gdb := setupTestDB(t)
	ownerID, view := seedProject(t, gdb)

	rows := []ImportRow{
		{RaiyatName: "नया रैयत", KhesraNumber: "101"},
		{RaiyatName: "नया रैयत", KhesraNumber: "102"},
	}

	result, err := ImportRecords(gdb, ownerID, view.ID, rows)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if result.CreatedCount != 2 {
		t.Fatalf("Expected 2 created, got %d", result.CreatedCount)
	}

	// Auto-created once, reused by the second row.
	if len(result.Project.RaiyatNames) != len(SeedRaiyatNames)+1 {
		t.Errorf("Expected exactly one new raiyat, got %d total", len(result.Project.RaiyatNames))
	}

	newID := raiyatID(t, result.Project, "नया रैयत")
	for _, record := range result.Project.LandRecords {
		if record.RaiyatID != newID {
			t.Errorf("Record %q not attached to the new raiyat", record.KhesraNumber)
		}
	}
}

func TestImportDuplicateWithinBatch(t *testing.T) {
	gdb := setupTestDB(t)
	ownerID, view := seedProject(t, gdb)

	rows := []ImportRow{
		{RaiyatName: "राम कुमार", KhesraNumber: "101"},
		{RaiyatName: "राम कुमार", KhesraNumber: "101"},
	}

	result, err := ImportRecords(gdb, ownerID, view.ID, rows)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if result.CreatedCount != 1 || result.ErrorCount != 1 {
		t.Errorf("Expected 1 created and 1 error, got %d and %d", result.CreatedCount, result.ErrorCount)
	}
	if !strings.Contains(result.Errors[0], "पंक्ति 2") {
		t.Errorf("Expected row 2 error, got %v", result.Errors)
	}
}

func TestImportProjectNotFound(t *testing.T) {
	gdb := setupTestDB(t)
	ownerID, _ := seedProject(t, gdb)

	_, err := ImportRecords(gdb, ownerID, 9999, []ImportRow{{RaiyatName: "x", KhesraNumber: "1"}})

	if kindOf(t, err) != KindNotFound {
		t.Errorf("Expected not found, got %v", err)
	}
}

func TestCoerceRakwa(t *testing.T) {
	cases := []struct {
		in   interface{}
		want string
	}{
		{nil, ""},
		{"12.5", "12.5"},
		{12.5, "12.5"},
		{float64(7), "7"},
		{3, "3"},
	}

	for _, tc := range cases {
		if got := coerceRakwa(tc.in); got != tc.want {
			t.Errorf("coerceRakwa(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
