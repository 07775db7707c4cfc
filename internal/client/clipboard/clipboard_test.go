package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystem_Success(t *testing.T) {
	var got string
	s := &System{
		write:       func(v string) error { got = v; return nil },
		unsupported: func() bool { return false },
	}

	require.NoError(t, s.Copy("Xy9!"))
	assert.Equal(t, "Xy9!", got)
}

func TestSystem_Unsupported(t *testing.T) {
	called := false
	s := &System{
		write:       func(string) error { called = true; return nil },
		unsupported: func() bool { return true },
	}

	err := s.Copy("x")
	require.ErrorIs(t, err, ErrUnavailable)
	assert.False(t, called)
}

func TestSystem_WriteError(t *testing.T) {
	boom := errors.New("exec: \"xclip\": executable file not found")
	s := &System{
		write:       func(string) error { return boom },
		unsupported: func() bool { return false },
	}

	err := s.Copy("x")
	require.ErrorIs(t, err, ErrUnavailable)
	require.ErrorIs(t, err, boom)
}

func TestMemory(t *testing.T) {
	m := &Memory{}
	require.NoError(t, m.Copy("abc"))
	assert.Equal(t, "abc", m.Text)

	m.Err = errors.New("denied")
	require.ErrorIs(t, m.Copy("def"), ErrUnavailable)
	assert.Equal(t, "abc", m.Text)
}

func TestImplementsCopier(t *testing.T) {
	var _ Copier = NewSystem()
	var _ Copier = (*Memory)(nil)
}
