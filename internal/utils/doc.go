// Package utils provides small helpers for dealing with the terminal and
// the desktop: TTY detection, reading piped input and opening URLs.
package utils
