package assets

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// Record is a row type that can be filled from the fields of one CSV line.
type Record interface {
	Fill(fields []string) error
}

// ReadCSV parses the comma separated file at path into one T per row.
// Blank lines and lines starting with '#' are skipped.
func ReadCSV[T any, PT interface {
	*T
	Record
}](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseCSV[T, PT](f, path)
}

// ParseCSV is ReadCSV over an already opened reader; name is used in errors.
func ParseCSV[T any, PT interface {
	*T
	Record
}](r io.Reader, name string) ([]T, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var out []T
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		line, _ := reader.FieldPos(0)

		var row T
		if err := PT(&row).Fill(fields); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, line, err)
		}
		out = append(out, row)
	}
	return out, nil
}
