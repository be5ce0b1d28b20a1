package render

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/Adda-Baaj/restful/internal/domain"
	"github.com/Adda-Baaj/restful/pkg/jsonvalue"
)

type csvSink struct{}

func (csvSink) Type() string { return "csv" }

// Write lays doc out as a table. The file is only created once every record
// has been converted.
func (csvSink) Write(path string, doc jsonvalue.Value) error {
	data, err := EncodeCSV(doc)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

// EncodeCSV turns an object, or an array of objects, into CSV. The first
// record's keys form the header; nested values are written as inline JSON.
func EncodeCSV(doc jsonvalue.Value) ([]byte, error) {
	records, err := tabularRecords(doc)
	if err != nil {
		return nil, err
	}

	header := records[0].Keys()
	known := make(map[string]struct{}, len(header))
	for _, k := range header {
		known[k] = struct{}{}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = true

	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for i, rec := range records {
		for _, k := range rec.Keys() {
			if _, ok := known[k]; !ok {
				return nil, domain.Errorf(domain.KindNotTabular, "encode csv",
					"record %d has field %q that is not in the header", i, k)
			}
		}
		row := make([]string, len(header))
		for j, k := range header {
			if v, ok := rec.Get(k); ok {
				row[j] = v.Text()
			}
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func tabularRecords(doc jsonvalue.Value) ([]jsonvalue.Value, error) {
	var records []jsonvalue.Value
	switch doc.Kind() {
	case jsonvalue.Object:
		records = []jsonvalue.Value{doc}
	case jsonvalue.Array:
		records = doc.Items()
	default:
		return nil, domain.Errorf(domain.KindNotTabular, "encode csv",
			"cannot write a %s response as csv", doc.Kind())
	}

	if len(records) == 0 {
		return nil, domain.Errorf(domain.KindEmptyResult, "encode csv",
			"response is an empty list: no header to derive")
	}
	for i, rec := range records {
		if rec.Kind() != jsonvalue.Object {
			return nil, domain.Errorf(domain.KindNotTabular, "encode csv",
				"record %d is a %s, expected an object", i, rec.Kind())
		}
	}
	return records, nil
}
