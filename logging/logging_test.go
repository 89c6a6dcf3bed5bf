package logging_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/archex/archex/logging"
)

func TestModuleWithoutLogger(t *testing.T) {
	l := logging.Module("mod1")(context.Background())

	// must not panic
	l.Debugf("a")
	l.Infof("b")
	l.Warnf("c")
	l.Errorf("d")
}

func TestModuleWithPrintfLogger(t *testing.T) {
	var lines []string

	ctx := logging.WithLogger(context.Background(), logging.Printf(func(msg string, args ...interface{}) {
		lines = append(lines, fmt.Sprintf(msg, args...))
	}))

	l := logging.Module("mod1")(ctx)
	l.Infof("hello %v", "world")
	l.Errorf("oops %v", 42)

	require.Equal(t, []string{
		"[mod1] hello world",
		"[mod1] oops 42",
	}, lines)
}

func TestWithNilLogger(t *testing.T) {
	ctx := logging.WithLogger(context.Background(), nil)

	// must not panic
	logging.Module("mod1")(ctx).Infof("hello")
}
