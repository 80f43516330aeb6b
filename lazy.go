// Package lazy turns source text into a syntax tree.
package lazy

import (
	"io"

	"github.com/xiam/lazy/ast"
	"github.com/xiam/lazy/parser"
)

// Reader parses a file from an io.Reader
type Reader struct {
	r io.Reader
}

// Parse parses a whole file held in memory
func Parse(in []byte) (*ast.File, error) {
	return parser.Parse(in)
}

// NewReader creates a Reader
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Parse reads the whole input into memory and then parses it
func (r *Reader) Parse() (*ast.File, error) {
	in, err := io.ReadAll(r.r)
	if err != nil {
		return nil, err
	}
	return Parse(in)
}
