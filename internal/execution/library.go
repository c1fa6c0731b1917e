package execution

import (
	"context"
	"fmt"
	"path/filepath"
	"plugin"
	"time"

	"go.uber.org/zap"

	"mdharness/internal/domain"
	"mdharness/internal/engine"
	"mdharness/internal/logging"
)

const (
	// LibraryFile is the shared object looked up inside the library directory
	LibraryFile = "md2html.so"
	// LibrarySymbol is the conversion function the library must export
	LibrarySymbol = "Convert"
)

// ConvertFunc is the in-process conversion contract shared by the plugin
// library and the built-in engine. A non-nil error plays the role of a
// non-zero exit status.
type ConvertFunc func(input []byte, flags []string) ([]byte, error)

// FuncInvoker runs an in-process converter behind the Invoker contract
type FuncInvoker struct {
	name    string
	convert ConvertFunc
	logger  *zap.Logger
}

// NewFuncInvoker wraps convert as an Invoker. name identifies it in logs.
func NewFuncInvoker(name string, convert ConvertFunc, logger *zap.Logger) *FuncInvoker {
	return &FuncInvoker{name: name, convert: convert, logger: logging.OrNop(logger)}
}

// NewEngineInvoker returns an Invoker backed by the built-in goldmark engine
func NewEngineInvoker(logger *zap.Logger) *FuncInvoker {
	return NewFuncInvoker("engine:goldmark", engine.New().Convert, logger)
}

// OpenLibrary loads LibraryFile from dir and resolves its Convert symbol
func OpenLibrary(dir string, logger *zap.Logger) (*FuncInvoker, error) {
	path := filepath.Join(dir, LibraryFile)
	lib, err := plugin.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open library %s: %w", path, err)
	}
	sym, err := lib.Lookup(LibrarySymbol)
	if err != nil {
		return nil, fmt.Errorf("library %s: %w", path, err)
	}
	convert, ok := sym.(func([]byte, []string) ([]byte, error))
	if !ok {
		return nil, fmt.Errorf("library %s: %s has type %T, want func([]byte, []string) ([]byte, error)", path, LibrarySymbol, sym)
	}
	logging.OrNop(logger).Debug("Loaded subject library", zap.String("path", path))
	return NewFuncInvoker("library:"+path, convert, logger), nil
}

// Invoke converts input in-process. A conversion error maps to exit status 1
// with the error text as stderr; a panic maps to exit status -1.
func (f *FuncInvoker) Invoke(ctx context.Context, input []byte, flags []string) (result domain.InvocationResult, err error) {
	if err := ctx.Err(); err != nil {
		return domain.InvocationResult{}, fmt.Errorf("invocation cancelled: %w", err)
	}

	start := time.Now()
	defer func() {
		result.Elapsed = time.Since(start)
		if r := recover(); r != nil {
			result.ExitCode = -1
			result.Stdout = ""
			result.Stderr = fmt.Sprintf("panic: %v", r)
			f.logger.Warn("Subject panicked", zap.String("subject", f.name), zap.Any("panic", r))
		}
	}()

	out, convErr := f.convert(input, flags)
	if convErr != nil {
		return domain.InvocationResult{ExitCode: 1, Stdout: decode(out), Stderr: convErr.Error()}, nil
	}

	f.logger.Debug("Subject converted",
		zap.String("subject", f.name),
		zap.Strings("flags", flags),
		zap.Int("input_bytes", len(input)),
		zap.Int("output_bytes", len(out)))

	return domain.InvocationResult{ExitCode: 0, Stdout: decode(out)}, nil
}
