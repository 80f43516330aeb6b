package lazy

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/lazy/ast"
	"github.com/xiam/lazy/parser"
)

func TestReaderParse(t *testing.T) {
	r := NewReader(strings.NewReader("| x : <a, b> = a\n| ~ f : {a -> b} = $(x)\n"))

	file, err := r.Parse()
	require.NoError(t, err)
	require.Len(t, file.Definitions, 2)

	assert.Equal(t, "x", file.Definitions[0].Tag.Tag)
	assert.Equal(t, ast.ExtentNonstatic, file.Definitions[1].Extent)
}

func TestReaderError(t *testing.T) {
	boom := errors.New("boom")

	_, err := NewReader(iotest.ErrReader(boom)).Parse()
	assert.Equal(t, boom, err)
}

func TestParseError(t *testing.T) {
	file, err := Parse([]byte("| x : t = v;"))
	assert.Nil(t, file)

	var syntaxErr *parser.SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, 11, syntaxErr.Token.Pos())
}
