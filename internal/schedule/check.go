package schedule

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// Check reads a CSV schedule from r and validates it record by record.
// An error is returned only when the input cannot be read or parsed as CSV;
// rule failures are reported in the Report.
//
// The first line is always the header. When it is blank the header is empty
// and every required column is reported missing. Bytes are taken as they are,
// so a leading byte order mark becomes part of the first column name.
func Check(r io.Reader, s *Schema) (Report, error) {
	br := bufio.NewReader(r)
	v := NewValidator(s)

	blank, err := blankFirstLine(br)
	if err != nil {
		return Report{}, fmt.Errorf("reading header: %w", err)
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var header []string
	if !blank {
		header, err = cr.Read()
		if err != nil && !errors.Is(err, io.EOF) {
			return Report{}, fmt.Errorf("reading header: %w", err)
		}
	}
	if !v.Header(header) {
		return v.Report(), nil
	}

	number := 1
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		number++
		if err != nil {
			return Report{}, fmt.Errorf("reading row %d: %w", number, err)
		}
		v.Row(NewRow(number, header, record))
	}
	return v.Report(), nil
}

// blankFirstLine reports whether the input opens with a line terminator.
// encoding/csv would skip such a line and promote the next record to header.
func blankFirstLine(br *bufio.Reader) (bool, error) {
	b, err := br.Peek(1)
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return b[0] == '\n' || b[0] == '\r', nil
}
