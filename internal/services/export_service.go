package services

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"menodiary/internal/models"
)

// Export renders the logs in a range as a flat table for the printable
// report: date, mood, medication, one column per catalog symptom, notes.

func ExportHeaders() []string {
	headers := []string{"Data", "Humor", "Medicação"}
	for _, symptom := range models.SymptomCatalog() {
		headers = append(headers, symptom.Name)
	}
	return append(headers, "Observações")
}

func BuildExportRows(state models.AppState, r DateRange) [][]string {
	catalog := models.SymptomCatalog()
	logs := LogsInRange(state, r)

	rows := make([][]string, 0, len(logs))
	for _, entry := range logs {
		row := []string{entry.Date, entry.Mood, yesNo(entry.MedicationTaken)}
		for _, symptom := range catalog {
			row = append(row, yesNo(entry.HasSymptom(symptom.ID)))
		}
		rows = append(rows, append(row, entry.Notes))
	}
	return rows
}

func WriteCSV(w io.Writer, state models.AppState, r DateRange) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(ExportHeaders()); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range BuildExportRows(state, r) {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

const exportSheet = "Registros"

func WriteXLSX(w io.Writer, state models.AppState, r DateRange) error {
	file := excelize.NewFile()
	defer file.Close()

	index, err := file.NewSheet(exportSheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	file.SetActiveSheet(index)
	if err := file.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	if err := setRow(file, 1, ExportHeaders()); err != nil {
		return err
	}
	for i, row := range BuildExportRows(state, r) {
		if err := setRow(file, i+2, row); err != nil {
			return err
		}
	}

	if _, err := file.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setRow(file *excelize.File, rowNumber int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNumber)
	if err != nil {
		return fmt.Errorf("resolve cell: %w", err)
	}
	cells := make([]interface{}, len(values))
	for i, value := range values {
		cells[i] = value
	}
	if err := file.SetSheetRow(exportSheet, cell, &cells); err != nil {
		return fmt.Errorf("write row %d: %w", rowNumber, err)
	}
	return nil
}

func yesNo(value bool) string {
	if value {
		return "S"
	}
	return "N"
}
