// Package system talks to the Linux console: KD display mode, the VT cursor
// and evdev keyboards. Everything else in it is linux-only.
package system
