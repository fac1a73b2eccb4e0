// Package file stores settings in ~/.astrolabe/config.toml and can watch
// that file so a long-running process sees hand edits.
package file
