// Package terminal wraps a tcell screen behind a small cell-buffer interface.
//
// Features:
//   - True color (24-bit) and 256-color output, selected by detection or override
//   - Whole-frame flush of a row-major cell slice
//   - Key, mouse-press and resize events decoded into a single Event value
//   - Clean terminal restoration on exit and on panic
package terminal
