package out

import (
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gentlemind/internal/platform/logging"
)

// ExecNarrator speaks through an external text-to-speech command, one
// utterance at a time. Pausing suspends the speech process.
type ExecNarrator struct {
	command string
	rate    int
	logger  logging.Logger

	mu     sync.Mutex
	cmd    *exec.Cmd
	paused bool
}

func NewExecNarrator(command string, rate int, logger logging.Logger) *ExecNarrator {
	return &ExecNarrator{command: strings.TrimSpace(command), rate: rate, logger: logger}
}

// Speak replaces whatever is being said with text.
func (n *ExecNarrator) Speak(text, languageTag string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.cancelLocked()
	if strings.TrimSpace(text) == "" || n.command == "" {
		return
	}

	cmd := exec.Command(n.command, speechArgs(n.command, text, languageTag, n.rate)...)
	if err := cmd.Start(); err != nil {
		n.logger.Warnf(logging.TypeNarrator, "Starting %s failed: %s", n.command, err)
		return
	}
	n.cmd = cmd
	n.paused = false
	n.logger.Debugf(logging.TypeNarrator, "Speaking %d chars (%s) with pid %d", len(text), languageTag, cmd.Process.Pid)

	go func() {
		_ = cmd.Wait()
		n.mu.Lock()
		defer n.mu.Unlock()
		if n.cmd == cmd {
			n.cmd = nil
			n.paused = false
		}
	}()
}

func (n *ExecNarrator) Pause() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.cmd == nil || n.paused {
		return
	}
	if err := suspend(n.cmd.Process.Pid); err != nil {
		n.logger.Warnf(logging.TypeNarrator, "Pausing speech failed: %s", err)
		return
	}
	n.paused = true
}

func (n *ExecNarrator) Resume() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.cmd == nil || !n.paused {
		return
	}
	if err := resume(n.cmd.Process.Pid); err != nil {
		n.logger.Warnf(logging.TypeNarrator, "Resuming speech failed: %s", err)
		return
	}
	n.paused = false
}

// CancelAll stops the current utterance immediately.
func (n *ExecNarrator) CancelAll() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.cancelLocked()
}

func (n *ExecNarrator) cancelLocked() {
	if n.cmd == nil {
		return
	}
	if n.paused {
		_ = resume(n.cmd.Process.Pid)
	}
	if err := n.cmd.Process.Kill(); err != nil {
		n.logger.Debugf(logging.TypeNarrator, "Stopping speech: %s", err)
	}
	n.cmd = nil
	n.paused = false
}

// Speaking reports whether an utterance process is alive.
func (n *ExecNarrator) Speaking() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.cmd != nil
}

func speechArgs(command, text, languageTag string, rate int) []string {
	lang := strings.ToLower(strings.SplitN(languageTag, "-", 2)[0])
	var args []string
	switch filepath.Base(command) {
	case "espeak", "espeak-ng":
		voice := "en-us"
		if lang == "th" {
			voice = "th"
		}
		args = append(args, "-v", voice)
		if rate > 0 {
			args = append(args, "-s", strconv.Itoa(rate))
		}
	case "say":
		if lang == "th" {
			args = append(args, "-v", "Kanya")
		}
		if rate > 0 {
			args = append(args, "-r", strconv.Itoa(rate))
		}
	default:
		// Unknown commands may not honor "--", so leading dashes are dropped.
		return []string{strings.TrimLeft(text, "- ")}
	}
	return append(args, "--", text)
}

// NoopNarrator is used when speech is disabled.
type NoopNarrator struct{}

func (NoopNarrator) Speak(string, string) {}
func (NoopNarrator) Pause()               {}
func (NoopNarrator) Resume()              {}
func (NoopNarrator) CancelAll()           {}
