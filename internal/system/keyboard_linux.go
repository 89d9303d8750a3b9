//go:build linux

package system

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

const evKey = 0x01

// Linux input-event-codes.h
const (
	KeyEsc = 1
	KeyQ   = 16
	KeyF4  = 62
)

// PreviewExitKeys close a framebuffer preview.
var PreviewExitKeys = []uint16{KeyEsc, KeyQ, KeyF4}

// KeyEvent is one EV_KEY record from an evdev device.
type KeyEvent struct {
	Code  uint16
	Value int32 // 0 release, 1 press, 2 autorepeat
}

// eventLayout returns the size of struct input_event and the offset of its
// type field (the size of struct timeval on this arch).
func eventLayout() (size, tvSize int) {
	tvSize = binary.Size(unix.Timeval{})
	return tvSize + 2 + 2 + 4, tvSize
}

// parseKeyEvents decodes the EV_KEY records in buf, a sequence of
// input_event structs. Trailing partial records are ignored.
func parseKeyEvents(buf []byte, eventSize, tvSize int) []KeyEvent {
	var events []KeyEvent
	for off := 0; off+eventSize <= len(buf); off += eventSize {
		rec := buf[off : off+eventSize]
		typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
		if typ != evKey {
			continue
		}
		events = append(events, KeyEvent{
			Code:  binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4]),
			Value: int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8])),
		})
	}
	return events
}

// WatchKeys watches /dev/input/event* and calls onPress once, for the first
// press of any of keys. Watchers stop when ctx is done.
//
// It is best-effort: without readable input devices it logs and returns.
func WatchKeys(ctx context.Context, l logger, keys []uint16, onPress func(code uint16)) {
	if onPress == nil || len(keys) == 0 {
		return
	}
	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(paths) == 0 {
		if l != nil {
			l.Infof("input", "no evdev devices found, preview closes on timeout or signal only")
		}
		return
	}

	wanted := make(map[uint16]bool, len(keys))
	for _, k := range keys {
		wanted[k] = true
	}
	var once sync.Once
	trigger := func(code uint16) {
		once.Do(func() {
			if l != nil {
				l.Infof("input", "key %d pressed", code)
			}
			onPress(code)
		})
	}
	for _, path := range paths {
		go watchDevice(ctx, path, wanted, trigger)
	}
}

func watchDevice(ctx context.Context, path string, wanted map[uint16]bool, trigger func(uint16)) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return
	}
	f := os.NewFile(uintptr(fd), path)
	defer f.Close()

	eventSize, tvSize := eventLayout()
	buf := make([]byte, 64*eventSize)
	for ctx.Err() == nil {
		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}
		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}
		for _, ev := range parseKeyEvents(buf[:n], eventSize, tvSize) {
			if ev.Value == 1 && wanted[ev.Code] {
				trigger(ev.Code)
				return
			}
		}
	}
}
