//go:build linux

package system

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// KD console modes from linux/kd.h
const (
	kdText     = 0x00
	kdGraphics = 0x01
	kdSetMode  = 0x4B3A // KDSETMODE ioctl
)

const (
	hideCursorSeq = "\x1b[?25l"
	showCursorSeq = "\x1b[?25h"
)

// ttyPaths are tried in order: the controlling terminal, then the active VT.
var ttyPaths = []string{"/dev/tty", "/dev/tty0"}

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// EnterGraphicsMode switches the console to KD_GRAPHICS and hides the cursor
// so the framebuffer is not overdrawn by the text console. The returned func
// undoes both. Failures are logged, not returned: a preview on a console that
// refuses the switch still shows, it just may flicker.
func EnterGraphicsMode(l logger) (restore func()) {
	graphics := logStep(l, "KD_GRAPHICS set", setKDMode(kdGraphics))
	hidden := logStep(l, "cursor hidden", writeVT(hideCursorSeq))
	return func() {
		if hidden {
			logStep(l, "cursor shown", writeVT(showCursorSeq))
		}
		if graphics {
			logStep(l, "KD_TEXT set", setKDMode(kdText))
		}
	}
}

func logStep(l logger, okMsg string, err error) bool {
	if l != nil {
		if err != nil {
			l.Errorf("tty", "%v", err)
		} else {
			l.Infof("tty", "%s", okMsg)
		}
	}
	return err == nil
}

func setKDMode(mode int) error {
	var errs []error
	for _, p := range ttyPaths {
		fd, err := unix.Open(p, unix.O_RDONLY, 0)
		if err != nil {
			errs = append(errs, fmt.Errorf("open %s: %w", p, err))
			continue
		}
		err = unix.IoctlSetInt(fd, kdSetMode, mode)
		_ = unix.Close(fd)
		if err != nil {
			errs = append(errs, fmt.Errorf("KDSETMODE %d on %s: %w", mode, p, err))
			continue
		}
		return nil
	}
	return errors.Join(errs...)
}

func writeVT(seq string) error {
	var errs []error
	for _, p := range ttyPaths {
		f, err := os.OpenFile(p, os.O_WRONLY, 0)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		_, err = f.WriteString(seq)
		_ = f.Close()
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	return fmt.Errorf("write VT: %w", errors.Join(errs...))
}
