package carteira

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Book is the on-disk collection of recorded positions and obligations.
// The engine itself never touches storage; the book is the ingress layer
// that hands entities to it.
type Book struct {
	Positions   []Position   `json:"positions"`
	Obligations []Obligation `json:"obligations"`
}

// NewBook returns an empty book.
func NewBook() *Book { return &Book{} }

// DecodeBook reads a book from its JSON form.
func DecodeBook(r io.Reader) (*Book, error) {
	b := NewBook()
	dec := json.NewDecoder(r)
	if err := dec.Decode(b); err != nil {
		return nil, fmt.Errorf("could not decode book: %w", err)
	}
	return b, nil
}

// EncodeBook writes the book in a canonical, human-readable JSON form.
func EncodeBook(w io.Writer, b *Book) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(b)
}

// LoadBook loads a book from path. A missing file yields an empty book, not
// an error.
func LoadBook(path string) (*Book, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return NewBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open book file %q: %w", path, err)
	}
	defer f.Close()
	return DecodeBook(f)
}

// SaveBook writes the book to path.
func SaveBook(path string, b *Book) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening book file %q for writing: %w", path, err)
	}
	defer f.Close()
	return EncodeBook(f, b)
}
