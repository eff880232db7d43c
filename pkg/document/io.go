package document

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/pivotgrid/pkg/errors"
)

// Read decodes a JSON document from r into v. Unknown fields are rejected
// so a request sent to the wrong operation fails loudly.
func Read(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode document")
	}
	return nil
}

// Write encodes v as indented JSON to w.
func Write(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadFile decodes the JSON document at path into v. A path of "-" reads
// standard input.
func ReadFile(path string, v any) error {
	if path == "-" {
		return Read(os.Stdin, v)
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodeNotFound, err, "open %s", path)
		}
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, v)
}

// WriteFile writes v as indented JSON to path. A path of "-" or "" writes
// standard output.
func WriteFile(path string, v any) error {
	if path == "" || path == "-" {
		return Write(os.Stdout, v)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
