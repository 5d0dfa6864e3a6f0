package reporting

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/yigit/injurydesk/internal/app/models"
)

// ExportColumns is the fixed header of the injury CSV export
var ExportColumns = []string{
	"id", "student_id", "injury_type", "severity", "body_part",
	"date_reported", "date_returned", "days_lost", "status",
}

// ExportFilename returns "<context>_export.csv", defaulting context to "injuries"
func ExportFilename(context string) string {
	context = strings.TrimSpace(context)
	if context == "" {
		context = "injuries"
	}
	// Only [A-Za-z0-9_-] survive so the name can sit in a quoted
	// Content-Disposition header without escaping or encoding.
	var b strings.Builder
	for _, r := range context {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String() + "_export.csv"
}

// WriteInjuryCSV writes one row per injury in the given order. Every cell is a
// JSON value: strings quoted and escaped, numbers bare, missing values null.
func WriteInjuryCSV(w io.Writer, injuries []models.Injury) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(strings.Join(ExportColumns, ",") + "\n"); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}

	for i := range injuries {
		row, err := encodeRow(injuries[i])
		if err != nil {
			return fmt.Errorf("failed to encode injury %s: %w", injuries[i].ID, err)
		}
		if _, err := bw.WriteString(row + "\n"); err != nil {
			return fmt.Errorf("failed to write export row: %w", err)
		}
	}

	return bw.Flush()
}

func encodeRow(injury models.Injury) (string, error) {
	cells := []any{
		injury.ID,
		injury.StudentID,
		injury.InjuryType,
		string(injury.Severity),
		injury.BodyPart,
		formatDay(&injury.DateReported),
		formatDay(injury.DateReturned),
		injury.DaysLost,
		string(injury.Status),
	}

	encoded := make([]string, len(cells))
	for i, cell := range cells {
		s, err := jsonCell(cell)
		if err != nil {
			return "", err
		}
		encoded[i] = s
	}

	return strings.Join(encoded, ","), nil
}

func formatDay(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.UTC().Format(dateLayout)
	return &s
}

func jsonCell(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// ReadInjuryCSV parses a WriteInjuryCSV export back into injuries.
// Only the exported columns are populated.
func ReadInjuryCSV(r io.Reader) ([]models.Injury, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read export header: %w", err)
		}
		return nil, fmt.Errorf("export is empty")
	}
	if header := strings.TrimSuffix(scanner.Text(), "\r"); header != strings.Join(ExportColumns, ",") {
		return nil, fmt.Errorf("unexpected export header %q", header)
	}

	injuries := make([]models.Injury, 0)
	line := 1
	for scanner.Scan() {
		line++
		text := strings.TrimSuffix(scanner.Text(), "\r")
		if text == "" {
			continue
		}

		injury, err := decodeRow(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		injuries = append(injuries, injury)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read export: %w", err)
	}

	return injuries, nil
}

// exportRow is positional; a row is decoded as the JSON array "[" + line + "]"
type exportRow struct {
	ID           string
	StudentID    string
	InjuryType   string
	Severity     string
	BodyPart     string
	DateReported *string
	DateReturned *string
	DaysLost     *int
	Status       string
}

func decodeRow(text string) (models.Injury, error) {
	var cells []json.RawMessage
	if err := json.Unmarshal([]byte("["+text+"]"), &cells); err != nil {
		return models.Injury{}, fmt.Errorf("malformed row: %w", err)
	}
	if len(cells) != len(ExportColumns) {
		return models.Injury{}, fmt.Errorf("expected %d cells, got %d", len(ExportColumns), len(cells))
	}

	var row exportRow
	targets := []any{
		&row.ID, &row.StudentID, &row.InjuryType, &row.Severity, &row.BodyPart,
		&row.DateReported, &row.DateReturned, &row.DaysLost, &row.Status,
	}
	for i, cell := range cells {
		if err := json.Unmarshal(cell, targets[i]); err != nil {
			return models.Injury{}, fmt.Errorf("column %s: %w", ExportColumns[i], err)
		}
	}

	injury := models.Injury{
		ID:         row.ID,
		StudentID:  row.StudentID,
		InjuryType: row.InjuryType,
		Severity:   models.Severity(row.Severity),
		BodyPart:   row.BodyPart,
		DaysLost:   row.DaysLost,
		Status:     models.InjuryStatus(row.Status),
	}

	if row.DateReported != nil {
		t, err := time.Parse(dateLayout, *row.DateReported)
		if err != nil {
			return models.Injury{}, fmt.Errorf("column date_reported: %w", err)
		}
		injury.DateReported = t
	}
	if row.DateReturned != nil {
		t, err := time.Parse(dateLayout, *row.DateReturned)
		if err != nil {
			return models.Injury{}, fmt.Errorf("column date_returned: %w", err)
		}
		injury.DateReturned = &t
	}

	return injury, nil
}
