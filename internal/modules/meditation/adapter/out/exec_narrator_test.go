package out

import (
	"os/exec"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gentlemind/internal/testutil"
)

func TestSpeechArgs(t *testing.T) {
	assert.Equal(t, []string{"-v", "th", "-s", "150", "--", "สวัสดี"}, speechArgs("espeak-ng", "สวัสดี", "th-TH", 150))
	assert.Equal(t, []string{"-v", "en-us", "--", "hello"}, speechArgs("/usr/bin/espeak", "hello", "en-US", 0))
	assert.Equal(t, []string{"-v", "Kanya", "-r", "180", "--", "x"}, speechArgs("say", "x", "th-TH", 180))
	assert.Equal(t, []string{"hello"}, speechArgs("my-tts", "hello", "en-US", 120))
}

func TestSpeechArgsKeepsDashTextOutOfOptions(t *testing.T) {
	assert.Equal(t, []string{"-v", "en-us", "--", "-s 999 breathe in"}, speechArgs("espeak-ng", "-s 999 breathe in", "en-US", 0))
	assert.Equal(t, []string{"--", "-v x breathe"}, speechArgs("say", "-v x breathe", "en-US", 0))
	assert.Equal(t, []string{"breathe in"}, speechArgs("my-tts", "- breathe in", "en-US", 0))
}

func TestExecNarrator_Lifecycle(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs job control")
	}
	path, err := exec.LookPath("sleep")
	if err != nil {
		t.Skip("sleep not available")
	}
	n := NewExecNarrator(path, 0, &testutil.MockLogger{})

	n.Speak("30", "en-US")
	require.True(t, n.Speaking())

	n.Pause()
	n.Resume()
	assert.True(t, n.Speaking())

	n.Pause()
	n.CancelAll()
	assert.False(t, n.Speaking())
}

func TestExecNarrator_ProcessExitClearsState(t *testing.T) {
	path, err := exec.LookPath("true")
	if err != nil {
		t.Skip("true not available")
	}
	n := NewExecNarrator(path, 0, &testutil.MockLogger{})
	n.Speak("done", "en-US")
	assert.Eventually(t, func() bool { return !n.Speaking() }, 2*time.Second, 10*time.Millisecond)
}

func TestExecNarrator_MissingCommandIsQuiet(t *testing.T) {
	logger := &testutil.MockLogger{}
	n := NewExecNarrator("definitely-not-a-speech-engine", 0, logger)
	n.Speak("hello", "en-US")
	assert.False(t, n.Speaking())
	assert.Equal(t, 1, logger.Count("warn"))
	n.Pause()
	n.Resume()
	n.CancelAll()
}
