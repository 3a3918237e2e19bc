//go:build e2e && unix

package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpFlag(t *testing.T) {
	t.Parallel()

	out, err := exec.Command(binPath, "-help").CombinedOutput()
	require.NoError(t, err)

	output := string(out)
	assert.Contains(t, output, "-config")
	assert.Contains(t, output, "-mode")
	assert.Contains(t, output, "-count")
}

func TestKeysTurnPages(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("-mode", "int", "-count", "3"))
	require.True(t, tf.SeePlain("Page 0"))

	tf.Reset()
	require.NoError(t, tf.SendKeys(KeyNext))
	require.True(t, tf.SeePlain("Page 1"))

	tf.Reset()
	require.NoError(t, tf.SendKeys(KeyNext+KeyNext))
	require.True(t, tf.SeePlain("Page 2"))

	tf.Reset()
	require.NoError(t, tf.SendKeys(KeyHome))
	require.True(t, tf.SeePlain("Page 0"))

	require.NoError(t, tf.SendKeys(KeyQuit))
	assert.NoError(t, tf.WaitExit(3*time.Second))
}

func TestMouseSwipeTurnsPage(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	tf.WriteConfig("start = 5\n")
	require.NoError(t, tf.StartApp())
	require.True(t, tf.SeePlain("Page 5"))

	// The page starts on the third row, below the title.
	tf.Reset()
	require.NoError(t, tf.Drag(2, 100, 90, 60, 20))
	require.True(t, tf.SeePlain("Page 6"))

	tf.Reset()
	require.NoError(t, tf.Drag(2, 30, 25))
	time.Sleep(300 * time.Millisecond)
	assert.NotContains(t, tf.SnapshotPlain(), "Page 7", "a short drag snaps back")

	require.NoError(t, tf.SendKeys(KeyCtrlC))
	assert.NoError(t, tf.WaitExit(3*time.Second))
}

func TestConfigIsCreatedAndLogged(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("-mode", "month"))
	require.True(t, tf.SeePlain("pageview · month"))
	require.NoError(t, tf.SendKeys(KeyNext))
	time.Sleep(500 * time.Millisecond)
	require.NoError(t, tf.SendKeys(KeyQuit))
	require.NoError(t, tf.WaitExit(3*time.Second))

	cfg, err := os.ReadFile(filepath.Join(tf.workspace, ".pageview.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(cfg), "[paging]")

	logData, err := os.ReadFile(filepath.Join(tf.workspace, "pageview.log"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(logData), "page changed"), "log:\n%s", logData)
}
