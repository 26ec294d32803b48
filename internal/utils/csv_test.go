package utils

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

type row struct {
	Name    string   `csv:"name"`
	Artists []string `csv:"artists"`
	Seconds int      `csv:"seconds"`
	Note    string
}

func TestStructToCsvHeader(t *testing.T) {
	got := StructToCsvHeader(reflect.TypeOf(row{}))
	want := []string{"name", "artists", "seconds", "Note"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("StructToCsvHeader() = %v; want %v", got, want)
	}
}

func TestWriteCsv(t *testing.T) {
	var buf bytes.Buffer
	headers := StructToCsvHeader(reflect.TypeOf(row{}))
	data := []row{
		{Name: "Take Five", Artists: []string{"Dave Brubeck", "Paul Desmond"}, Seconds: 324},
		{Name: "So What, Live", Seconds: 545, Note: "live"},
	}
	if err := WriteCsv(&buf, headers, data); err != nil {
		t.Fatalf("WriteCsv() error = %v", err)
	}

	want := "name,artists,seconds,Note\n" +
		"Take Five,Dave Brubeck;Paul Desmond,324,\n" +
		"\"So What, Live\",,545,live\n"
	if buf.String() != want {
		t.Errorf("WriteCsv() = %q; want %q", buf.String(), want)
	}
}

func TestWriteCsv_NotStruct(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCsv(&buf, []string{"a"}, []int{1}); err == nil {
		t.Error("WriteCsv() with ints should fail")
	}
}

func TestReadCsv(t *testing.T) {
	in := "Seconds,NAME,extra,artists\n" +
		"324,Take Five,x,Dave Brubeck;Paul Desmond\n" +
		",Blue in Green,y,\n"
	got, err := ReadCsv[row](strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadCsv() error = %v", err)
	}
	want := []row{
		{Name: "Take Five", Artists: []string{"Dave Brubeck", "Paul Desmond"}, Seconds: 324},
		{Name: "Blue in Green"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadCsv() = %+v; want %+v", got, want)
	}
}

func TestReadCsv_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"bad_int", "seconds\nabc\n"},
		{"ragged", "name,seconds\nonly-one\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadCsv[row](strings.NewReader(tt.in)); err == nil {
				t.Error("ReadCsv() expected an error")
			}
		})
	}
}

func TestCsvFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.csv")
	data := []row{{Name: "Naima", Seconds: 261}}
	if err := WriteToCsvFile(path, StructToCsvHeader(reflect.TypeOf(row{})), data); err != nil {
		t.Fatalf("WriteToCsvFile() error = %v", err)
	}
	got, err := ReadCsvFile[row](path)
	if err != nil {
		t.Fatalf("ReadCsvFile() error = %v", err)
	}
	if len(got) != 1 || got[0].Name != "Naima" || got[0].Seconds != 261 {
		t.Errorf("ReadCsvFile() = %+v", got)
	}
}
