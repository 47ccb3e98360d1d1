package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		mode    string
		debugOn bool
		infoOn  bool
	}{
		{mode: "", debugOn: false, infoOn: false},
		{mode: "quiet", debugOn: false, infoOn: false},
		{mode: "dev", debugOn: true, infoOn: true},
		{mode: "development", debugOn: true, infoOn: true},
		{mode: "PROD", debugOn: false, infoOn: true},
		{mode: "production", debugOn: false, infoOn: true},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			logger, err := New(tt.mode)
			require.NoError(t, err)
			require.NotNil(t, logger)
			defer Sync(logger)

			assert.Equal(t, tt.debugOn, logger.Core().Enabled(zapcore.DebugLevel))
			assert.Equal(t, tt.infoOn, logger.Core().Enabled(zapcore.InfoLevel))
		})
	}
}

func TestSyncNil(t *testing.T) {
	assert.NotPanics(t, func() { Sync(nil) })
}
