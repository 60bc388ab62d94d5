package carteira

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestBookRoundTrip(t *testing.T) {
	book := &Book{
		Positions: []Position{
			NewPosition("cdb nubank", CDB, 10000, 100, NewDate(2025, 3, 10)),
			NewPosition("lci itau", LCI, 5000, 95, NewDate(2026, 1, 20)),
		},
		Obligations: []Obligation{
			NewObligation("tv", 1200, 12, NewDate(2026, 8, 1)),
		},
	}

	path := filepath.Join(t.TempDir(), "carteira.json")
	if err := SaveBook(path, book); err != nil {
		t.Fatalf("SaveBook() error = %v", err)
	}

	loaded, err := LoadBook(path)
	if err != nil {
		t.Fatalf("LoadBook() error = %v", err)
	}
	if !reflect.DeepEqual(book, loaded) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, book)
	}
}

func TestLoadBookMissingFile(t *testing.T) {
	book, err := LoadBook(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("LoadBook() on a missing file error = %v", err)
	}
	if len(book.Positions) != 0 || len(book.Obligations) != 0 {
		t.Errorf("missing file should load an empty book, got %+v", book)
	}
}

func TestDecodeBookRejectsGarbage(t *testing.T) {
	_, err := DecodeBook(strings.NewReader("{not json"))
	if err == nil {
		t.Error("DecodeBook() on garbage should fail")
	}
}

func TestKindJSON(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{CDB, `"cdb"`},
		{LCI, `"lci"`},
		{Tesouro, `"tesouro"`},
	}
	for _, tt := range tests {
		got, err := tt.kind.MarshalJSON()
		if err != nil {
			t.Fatalf("MarshalJSON(%v) error = %v", tt.kind, err)
		}
		if string(got) != tt.want {
			t.Errorf("MarshalJSON(%v) = %s, want %s", tt.kind, got, tt.want)
		}
		var back Kind
		if err := back.UnmarshalJSON(got); err != nil {
			t.Fatalf("UnmarshalJSON(%s) error = %v", got, err)
		}
		if back != tt.kind {
			t.Errorf("round trip = %v, want %v", back, tt.kind)
		}
	}
}
