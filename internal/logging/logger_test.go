package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Backends(t *testing.T) {
	ctx := context.Background()

	for _, backend := range []string{"", BackendSlog, BackendZap} {
		t.Run("backend="+backend, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := New(backend, "info", &buf)
			require.NoError(t, err)

			l.Debug(ctx, "hidden")
			l.With("module", "store").Info(ctx, "visible", "n", 1)

			if z, ok := l.(*ZapLogger); ok {
				_ = z.Sync()
			}

			out := buf.String()
			assert.NotContains(t, out, "hidden")
			assert.Contains(t, out, "visible")
			assert.Contains(t, out, `"module":"store"`)
		})
	}
}

func TestNew_Errors(t *testing.T) {
	var buf bytes.Buffer

	_, err := New("logrus", "info", &buf)
	require.Error(t, err)

	_, err = New(BackendSlog, "loud", &buf)
	require.Error(t, err)

	_, err = New(BackendZap, "loud", &buf)
	require.Error(t, err)
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Error(context.Background(), "discarded")
	l.With("a", 1).Info(context.Background(), "discarded")
}
