package dispatch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	errtree "github.com/xgx-io/xgx-errtree"
)

func TestZap_LogsStructuredError(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	feat := testFeature(t, Zap(zap.New(core)))

	require.NoError(t, feat.Emit("Front", "Failed upload",
		errtree.WithOriginal(errors.New("disk full")),
		errtree.WithParams(errtree.Params{"request_id": "req-1"})))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	require.Equal(t, zapcore.ErrorLevel, entry.Level)
	require.Equal(t, "Auth/Social/Facebook: Failed upload >>> disk full", entry.Message)
	require.Equal(t, map[string]any{
		"kind":              "Front",
		"root_context":      "Auth",
		"contexts_chunk":    "Auth/Social",
		"feature":           "Facebook",
		"original":          "disk full",
		"params.request_id": "req-1",
		"params.team":       "identity",
	}, entry.ContextMap())
}

func TestZap_NoOriginalField(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	require.NoError(t, testFeature(t, Zap(zap.New(core))).Emit("Back", "m"))
	require.NotContains(t, logs.All()[0].ContextMap(), "original")
}
