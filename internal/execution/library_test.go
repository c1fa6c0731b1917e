package execution

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuncInvoker(t *testing.T) {
	tests := []struct {
		name       string
		convert    ConvertFunc
		wantExit   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "success",
			convert:    func(in []byte, _ []string) ([]byte, error) { return append([]byte("<p>"), in...), nil },
			wantExit:   0,
			wantStdout: "<p>x",
		},
		{
			name:       "conversion error",
			convert:    func([]byte, []string) ([]byte, error) { return nil, errors.New("unknown option: --fbogus") },
			wantExit:   1,
			wantStderr: "unknown option: --fbogus",
		},
		{
			name:       "panic",
			convert:    func([]byte, []string) ([]byte, error) { panic("index out of range") },
			wantExit:   -1,
			wantStderr: "panic: index out of range",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NewFuncInvoker("test", tt.convert, nil).Invoke(context.Background(), []byte("x"), nil)
			require.NoError(t, err)
			assert.Equal(t, tt.wantExit, result.ExitCode)
			assert.Equal(t, tt.wantStdout, result.Stdout)
			assert.Equal(t, tt.wantStderr, result.Stderr)
		})
	}
}

func TestFuncInvoker_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	inv := NewFuncInvoker("test", func([]byte, []string) ([]byte, error) {
		called = true
		return nil, nil
	}, nil)

	_, err := inv.Invoke(ctx, []byte("x"), nil)
	require.Error(t, err)
	assert.False(t, called)
}

func TestEngineInvoker(t *testing.T) {
	inv := NewEngineInvoker(nil)

	result, err := inv.Invoke(context.Background(), []byte("# a\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)
	assert.Contains(t, result.Stdout, `<h1 id="a">a</h1>`)

	result, err = inv.Invoke(context.Background(), []byte("x"), []string{"--fbogus"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, result.Stderr, "--fbogus")
}

func TestOpenLibrary_Missing(t *testing.T) {
	_, err := OpenLibrary(t.TempDir(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), LibraryFile)
}
