package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsphweid/midimml/config"
	"github.com/jsphweid/midimml/logger"
	"github.com/jsphweid/midimml/model"
	"github.com/jsphweid/midimml/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchRewritesOnChange(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	midiPath := filepath.Join(dir, "tune.mid")
	mmlPath := filepath.Join(outDir, "tune.mml")
	require.NoError(t, os.WriteFile(midiPath, demoBytes(t), 0666))

	log, recorded := logger.NewTestLogger()
	a := &app{
		cfg:  config.Config{OutDir: outDir, WatchInterval: 10 * time.Millisecond, Debounce: 30 * time.Millisecond},
		log:  log,
		opts: model.DefaultSongOptions(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- watch(ctx, a, midiPath) }()

	mmlContent := func() string {
		content, _ := os.ReadFile(mmlPath)
		return string(content)
	}
	require.Eventually(t, func() bool {
		return mmlContent() == "t140v14o5C8D8E8F8G8F8E8D8v15C2.\nt140v10o3C2:E2:G2F2:A2:o4C2o3G2:B2:o4D2o3C2:E2:G2\n"
	}, 2*time.Second, 10*time.Millisecond)

	// swap the file in one step with a newer mtime
	s, err := sample.Create(480, sample.Track{Notes: []sample.Note{{Key: 69, Velocity: 127, Length: 480}}})
	require.NoError(t, err)
	data, err := sample.Bytes(s)
	require.NoError(t, err)
	tmp := filepath.Join(dir, "tune.tmp")
	require.NoError(t, os.WriteFile(tmp, data, 0666))
	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(tmp, later, later))
	require.NoError(t, os.Rename(tmp, midiPath))

	require.Eventually(t, func() bool {
		return mmlContent() == "t120v15o4A4\n"
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
	assert.Eventually(t, func() bool {
		return recorded.FilterMessage("Converted midi file").Len() == 2
	}, time.Second, 10*time.Millisecond)
}
