package pattern

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "github.com/conduit-lang/fsmatch/compiler/errors"
)

func TestCompileAndMatch(t *testing.T) {
	p, err := Compile("a*4.+hi")
	require.NoError(t, err)

	assert.Equal(t, "a*4.+hi", p.String())
	assert.True(t, p.Matches("aaaaaa4uhi"))
	assert.True(t, p.Matches("4uhi"))
	assert.False(t, p.Matches("meow"))
	assert.False(t, p.Matches("aaa4hi"))
}

func TestCompileError(t *testing.T) {
	p, err := Compile("*oops")
	assert.Nil(t, p)
	require.Error(t, err)

	var ce cerrors.CompileError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, cerrors.ErrDanglingQuantifier, ce.Code)
	assert.Equal(t, 1, ce.Location.Column)
}

func TestCompileErrorUnsupportedCharacter(t *testing.T) {
	_, err := Compile("a\x01b")
	require.Error(t, err)

	var ce cerrors.CompileError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, cerrors.ErrInvalidCharacter, ce.Code)
	assert.Equal(t, "lexer", ce.Phase)
}

func TestMustCompile(t *testing.T) {
	assert.NotPanics(t, func() {
		MustCompile("a+b*")
	})
	assert.Panics(t, func() {
		MustCompile("**")
	})
}

func TestEmptyPattern(t *testing.T) {
	p := MustCompile("")

	assert.True(t, p.Matches(""))
	assert.False(t, p.Matches("x"))
}

func TestGraphExposed(t *testing.T) {
	p := MustCompile("a*b")

	g := p.Graph()
	require.NotNil(t, g)
	assert.Contains(t, g.Dot(), "digraph pattern")
}
