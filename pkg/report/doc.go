// Package report renders analysis and removal outcomes for a terminal.
//
// Styling goes through a lipgloss renderer bound to the output writer, so
// colors are dropped automatically when the writer is not a terminal.
package report
