// Package host performs the side effects the terminal asks for: opening
// links and mail, copying to the clipboard and ringing the bell.
package host

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
	"github.com/gen2brain/beeep"
)

// ErrUnsupportedPlatform is returned when no opener is known for the OS.
var ErrUnsupportedPlatform = errors.New("no opener for platform")

// Result describes how an open request was handled.
type Result struct {
	Target string
	// Copied is set when the opener failed and Target was copied to the
	// clipboard instead.
	Copied bool
	Err    error
}

// Host runs platform commands on behalf of the terminal.
type Host struct {
	goos   string
	run    func(name string, args ...string) error
	copy   func(text string) error
	beep   func() error
	logger *slog.Logger
}

// New creates a host for the current platform.
func New(logger *slog.Logger) *Host {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Host{
		goos: runtime.GOOS,
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
		copy: clipboard.WriteAll,
		beep: func() error {
			return beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
		},
		logger: logger,
	}
}

// Open opens target with the platform opener. If that fails the target is
// copied to the clipboard so the user can paste it.
func (h *Host) Open(target string) Result {
	err := h.openURL(target)
	if err == nil {
		h.logger.Debug("opened", "target", target)
		return Result{Target: target}
	}

	h.logger.Warn("opener failed", "target", target, "error", err)
	if copyErr := h.copy(target); copyErr != nil {
		return Result{Target: target, Err: errors.Join(err, fmt.Errorf("failed to copy to clipboard: %w", copyErr))}
	}
	return Result{Target: target, Copied: true}
}

// OpenMail composes a mail to address.
func (h *Host) OpenMail(address string) Result {
	return h.Open("mailto:" + address)
}

// Bell rings the terminal bell.
func (h *Host) Bell() error {
	if err := h.beep(); err != nil {
		return fmt.Errorf("failed to ring bell: %w", err)
	}
	return nil
}

func (h *Host) openURL(target string) error {
	name, args, err := openerCommand(h.goos, target)
	if err != nil {
		return err
	}
	if err := h.run(name, args...); err != nil {
		return fmt.Errorf("failed to run %s: %w", name, err)
	}
	return nil
}

// openerCommand returns the command that opens target on goos.
func openerCommand(goos, target string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{target}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{target}, nil
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}
}
