//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

const ringSize = 1 << 20      // 1 MiB of scrollback
var binPath = "pageview_e2e" // unified binary path

// Terminal size the app is started with
const (
	termRows = 40
	termCols = 120
)

// Key constants for better readability
const (
	KeyCtrlC = "\x03"
	KeyNext  = "l"
	KeyPrev  = "h"
	KeyHome  = "t"
	KeyQuit  = "q"
)

// ANSI escape sequence regex for normalization - covers CSI, OSC, charset, keypad modes
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` + // CSI sequences
		`(?:\x1b\][^\x07]*\x07)|` + // OSC sequences
		`(?:\x1b[\(\)][A-Za-z])|` + // charset sequences
		`(?:\x1b=|\x1b>)|` + // keypad mode sequences
		`\r`, // carriage returns
)

// TUITestFramework provides utilities for testing TUI applications
type TUITestFramework struct {
	t         *testing.T
	pty       *os.File
	cmd       *exec.Cmd
	workspace string

	// Ring buffer for continuous output capture
	mu   sync.Mutex
	buf  []byte
	head int
	full bool
}

// NewTUITest creates a new TUI test framework instance with its own
// working directory, so each test gets a fresh config file
func NewTUITest(t *testing.T) *TUITestFramework {
	return &TUITestFramework{
		t:         t,
		buf:       make([]byte, ringSize),
		workspace: t.TempDir(),
	}
}

// WriteConfig writes .pageview.toml into the workspace
func (tf *TUITestFramework) WriteConfig(body string) {
	tf.t.Helper()
	path := filepath.Join(tf.workspace, ".pageview.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		tf.t.Fatalf("write config: %v", err)
	}
}

// StartApp launches the pageview binary with given arguments in a PTY
func (tf *TUITestFramework) StartApp(args ...string) error {
	tf.cmd = exec.Command(binPath, args...)
	tf.cmd.Dir = tf.workspace
	tf.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C.UTF-8",
		"HOME="+tf.workspace,
	)

	ptyFile, err := pty.StartWithSize(tf.cmd, &pty.Winsize{Rows: termRows, Cols: termCols})
	if err != nil {
		return fmt.Errorf("failed to start command: %w", err)
	}
	tf.pty = ptyFile

	tf.startReader()
	return nil
}

// startReader starts the continuous reader goroutine
func (tf *TUITestFramework) startReader() {
	go func() {
		buf := make([]byte, 8192)
		for {
			n, err := tf.pty.Read(buf)
			if n > 0 {
				tf.mu.Lock()
				for i := 0; i < n; i++ {
					tf.buf[tf.head] = buf[i]
					tf.head = (tf.head + 1) % ringSize
					if tf.head == 0 {
						tf.full = true
					}
				}
				tf.mu.Unlock()
			}
			if err != nil {
				return
			}
		}
	}()
}

// SendKeys sends keystrokes to the application
func (tf *TUITestFramework) SendKeys(keys string) error {
	tf.t.Helper()
	_, err := tf.pty.Write([]byte(keys))
	return err
}

// Drag sends an SGR mouse press at (x0, y), a motion to each x in
// steps and a release at the last position. Coordinates are 0-based.
func (tf *TUITestFramework) Drag(y, x0 int, steps ...int) error {
	tf.t.Helper()
	var b strings.Builder
	fmt.Fprintf(&b, "\x1b[<0;%d;%dM", x0+1, y+1)
	last := x0
	for _, x := range steps {
		fmt.Fprintf(&b, "\x1b[<32;%d;%dM", x+1, y+1)
		last = x
	}
	fmt.Fprintf(&b, "\x1b[<0;%d;%dm", last+1, y+1)
	return tf.SendKeys(b.String())
}

// Reset forgets the output captured so far
func (tf *TUITestFramework) Reset() {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	tf.head = 0
	tf.full = false
}

// SeePlain waits for specific plain text to appear (normalized output)
func (tf *TUITestFramework) SeePlain(text string) bool {
	tf.t.Helper()
	return tf.WaitFor(func(s string) bool {
		return strings.Contains(ansiRe.ReplaceAllString(s, ""), text)
	}, 3*time.Second)
}

// WaitFor waits for a predicate to be true in the output
func (tf *TUITestFramework) WaitFor(pred func(string) bool, timeout time.Duration) bool {
	tf.t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		if pred(tf.Snapshot()) {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(25 * time.Millisecond) // simple, reliable polling; tests only
	}
}

// WaitExit waits for the process to exit
func (tf *TUITestFramework) WaitExit(timeout time.Duration) error {
	done := make(chan error, 1)
	go func() { done <- tf.cmd.Wait() }()
	select {
	case err := <-done:
		tf.cmd = nil
		return err
	case <-time.After(timeout):
		return fmt.Errorf("process did not exit within %v", timeout)
	}
}

// Snapshot returns the current contents of the ring buffer (thread-safe)
func (tf *TUITestFramework) Snapshot() string {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	if !tf.full {
		return string(tf.buf[:tf.head])
	}
	out := make([]byte, ringSize)
	copy(out, tf.buf[tf.head:])
	copy(out[ringSize-tf.head:], tf.buf[:tf.head])
	return string(out)
}

// SnapshotPlain returns the current contents of the ring buffer with ANSI sequences removed
func (tf *TUITestFramework) SnapshotPlain() string {
	return ansiRe.ReplaceAllString(tf.Snapshot(), "")
}

// DumpTailOnFail logs the last n bytes of normalized output
func (tf *TUITestFramework) DumpTailOnFail(n int) {
	if !tf.t.Failed() {
		return
	}
	s := tf.SnapshotPlain()
	if len(s) > n {
		s = s[len(s)-n:]
	}
	tf.t.Logf("--- tail ---\n%s", s)
}

// Cleanup closes the PTY and terminates the application
func (tf *TUITestFramework) Cleanup() {
	tf.DumpTailOnFail(4096)
	if tf.pty != nil {
		_ = tf.pty.Close()
		tf.pty = nil
	}
	if tf.cmd != nil && tf.cmd.Process != nil {
		_ = tf.cmd.Process.Kill()
		_, _ = tf.cmd.Process.Wait()
		tf.cmd = nil
	}
}
