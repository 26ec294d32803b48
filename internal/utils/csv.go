package utils

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// StructToCsvHeader takes a struct type and returns a slice of strings representing the CSV header.
// It uses the `csv` tag on struct fields to determine the header name.
// If a field doesn't have a `csv` tag, the field name is used.
func StructToCsvHeader(t reflect.Type) []string {
	var headers []string
	for i := 0; i < t.NumField(); i++ {
		headers = append(headers, columnName(t.Field(i)))
	}
	return headers
}

// WriteToCsvFile writes the given headers and data to a CSV file at the specified filePath.
func WriteToCsvFile[T any](filePath string, headers []string, data []T) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteCsv(file, headers, data)
}

// WriteCsv writes headers followed by one row per item. Slice fields are
// joined with a semicolon (;) to handle multi-value fields.
func WriteCsv[T any](w io.Writer, headers []string, data []T) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(headers); err != nil {
		return err
	}

	for _, item := range data {
		row := make([]string, len(headers))
		v := reflect.ValueOf(item)

		// If item is a pointer, get the value it points to
		if v.Kind() == reflect.Ptr {
			v = v.Elem()
		}

		if v.Kind() != reflect.Struct {
			return fmt.Errorf("data must be a slice of structs")
		}

		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			idx := indexOf(headers, columnName(t.Field(i)))
			if idx < 0 {
				continue // Skip fields not in the headers
			}
			row[idx] = formatField(v.Field(i))
		}

		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// ReadCsvFile reads the CSV file at filePath into a slice of T.
func ReadCsvFile[T any](filePath string) ([]T, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadCsv[T](file)
}

// ReadCsv decodes CSV rows into structs of type T, matching columns to fields
// by `csv` tag or field name (case-insensitive). Unknown columns are ignored.
// String and integer fields are supported.
func ReadCsv[T any](r io.Reader) ([]T, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV is empty")
	}

	var zero T
	t := reflect.TypeOf(zero)
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("target must be a struct type")
	}

	// column index -> field index
	fields := make(map[int]int)
	for col, name := range records[0] {
		for i := 0; i < t.NumField(); i++ {
			if strings.EqualFold(strings.TrimSpace(name), columnName(t.Field(i))) {
				fields[col] = i
				break
			}
		}
	}

	out := make([]T, 0, len(records)-1)
	for line, record := range records[1:] {
		var item T
		v := reflect.ValueOf(&item).Elem()
		for col, value := range record {
			i, ok := fields[col]
			if !ok {
				continue
			}
			if err := setField(v.Field(i), value); err != nil {
				return nil, fmt.Errorf("line %d, column %q: %w", line+2, records[0][col], err)
			}
		}
		out = append(out, item)
	}
	return out, nil
}

func columnName(field reflect.StructField) string {
	if tag := field.Tag.Get("csv"); tag != "" {
		return tag
	}
	return field.Name
}

func formatField(fieldValue reflect.Value) string {
	if fieldValue.Kind() == reflect.Slice {
		var sliceValues []string
		for j := 0; j < fieldValue.Len(); j++ {
			sliceValues = append(sliceValues, fmt.Sprintf("%v", fieldValue.Index(j).Interface()))
		}
		return strings.Join(sliceValues, ";")
	}
	return fmt.Sprintf("%v", fieldValue.Interface())
}

func setField(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if strings.TrimSpace(value) == "" {
			return nil
		}
		n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return err
		}
		field.SetInt(n)
	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type %s", field.Type())
		}
		var parts []string
		if value != "" {
			parts = strings.Split(value, ";")
		}
		field.Set(reflect.ValueOf(parts))
	default:
		return fmt.Errorf("unsupported field type %s", field.Type())
	}
	return nil
}

// indexOf returns the index of a string in a slice or -1 if not found
func indexOf(slice []string, item string) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}
