// Package driven declares what the core needs from the outside world.
//
// An Ephemeris supplies heliocentric positions and a ConfigStore holds raw
// setting values. Both are required. A ChartStore is optional; without one
// history is unavailable but charts still compute. ConfigWatcher is an
// optional extra that file-backed config stores implement.
//
// This package imports domain and nothing from the adapters.
package driven
