package services

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/xuri/excelize/v2"

	"menodiary/internal/models"
)

func exportState() models.AppState {
	return stateWithLogs(
		models.DailyLog{
			Date:            "2024-04-01",
			Mood:            models.MoodHard,
			Symptoms:        []string{"hot_flash", "insomnia"},
			MedicationTaken: true,
			Notes:           "noite difícil",
		},
		models.DailyLog{Date: "2024-04-02", Mood: models.MoodGreat},
		models.DailyLog{Date: "2024-05-15", Mood: models.MoodNormal},
	)
}

func TestExportHeadersCoverTheCatalog(t *testing.T) {
	headers := ExportHeaders()
	expected := 3 + len(models.SymptomCatalog()) + 1
	if len(headers) != expected {
		t.Fatalf("expected %d headers, got %d", expected, len(headers))
	}
	if headers[0] != "Data" || headers[len(headers)-1] != "Observações" {
		t.Fatalf("unexpected header framing: %v", headers)
	}
}

func TestBuildExportRowsFlagsSymptoms(t *testing.T) {
	r := DateRange{Start: "2024-04-01", End: "2024-04-30"}
	rows := BuildExportRows(exportState(), r)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows inside the range, got %d", len(rows))
	}

	headers := ExportHeaders()
	byHeader := map[string]string{}
	for i, header := range headers {
		byHeader[header] = rows[0][i]
	}
	if byHeader["Data"] != "2024-04-01" || byHeader["Medicação"] != "S" {
		t.Fatalf("unexpected first row: %v", rows[0])
	}
	if byHeader[models.SymptomName("hot_flash")] != "S" {
		t.Fatalf("expected hot flash flagged: %v", rows[0])
	}
	if byHeader[models.SymptomName("headache")] != "N" {
		t.Fatalf("expected absent symptom unflagged: %v", rows[0])
	}
	if byHeader["Observações"] != "noite difícil" {
		t.Fatalf("expected notes in last column: %v", rows[0])
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	r := DateRange{Start: "2024-04-01", End: "2024-04-30"}
	if err := WriteCSV(&buf, exportState(), r); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(records))
	}
	if records[1][0] != "2024-04-01" || records[2][0] != "2024-04-02" {
		t.Fatalf("expected rows sorted by date: %v", records)
	}
}

func TestWriteXLSXProducesReadableWorkbook(t *testing.T) {
	var buf bytes.Buffer
	r := DateRange{Start: "2024-04-01", End: "2024-04-30"}
	if err := WriteXLSX(&buf, exportState(), r); err != nil {
		t.Fatalf("write xlsx: %v", err)
	}

	file, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer file.Close()

	rows, err := file.GetRows("Registros")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Data" || rows[1][0] != "2024-04-01" {
		t.Fatalf("unexpected sheet content: %v", rows[:2])
	}
}
