package csvdb

import (
	"encoding/csv"
	"fmt"
	"io"
)

// RecordMaker is a type which converts parsed CSV row to the Airport instance.
type RecordMaker func([]string) (*Airport, error)

// SkipFunc is called for each row which was skipped. line is 1-based.
type SkipFunc func(line int, err error)

// CSVReader is a wrapper over csv.Reader to convert each row into
// Airport instance. Broken rows are reported to SkipFunc and skipped.
type CSVReader struct {
	reader     *csv.Reader
	makeRecord RecordMaker
	onSkip     SkipFunc
}

// Read returns a next valid record. It returns io.EOF when the input is
// exhausted. Any other error means that the underlying reader is broken.
func (cr *CSVReader) Read() (*Airport, error) {
	for {
		data, err := cr.reader.Read()

		switch {
		case err == io.EOF:
			return nil, io.EOF
		case err != nil:
			return nil, fmt.Errorf("cannot read new record: %w", err)
		}

		// Quotes are lazy so broken quoting never fails a read. It shifts
		// or merges columns instead, and then a record maker rejects a row.
		record, err := cr.makeRecord(data)
		if err != nil {
			line, _ := cr.reader.FieldPos(0)
			cr.skip(line, err)

			continue
		}

		return record, nil
	}
}

// ReadAll reads all valid records until EOF.
func (cr *CSVReader) ReadAll() ([]Airport, error) {
	rv := []Airport{}

	for {
		record, err := cr.Read()

		switch {
		case err == io.EOF:
			return rv, nil
		case err != nil:
			return nil, err
		}

		rv = append(rv, *record)
	}
}

func (cr *CSVReader) skip(line int, err error) {
	if cr.onSkip != nil {
		cr.onSkip(line, err)
	}
}

// NewCSVReader converts given io.Reader instance into CSVReader.
func NewCSVReader(filefp io.Reader, makeRecord RecordMaker, onSkip SkipFunc) *CSVReader {
	reader := csv.NewReader(filefp)
	reader.ReuseRecord = true
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	return &CSVReader{
		reader:     reader,
		makeRecord: makeRecord,
		onSkip:     onSkip,
	}
}
