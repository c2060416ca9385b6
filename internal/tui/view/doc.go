// Package view provides the rendering components of the planner TUI.
//
// Each component takes plain values (a store, a summary, a budget report)
// and returns a string, so rendering can be tested without a running
// program.
//
// # Components
//
//   - [SectionView]: section tabs and the rows of the focused section
//   - [RenderDetails]: the cost breakdown table shown with 'd'
//   - [RenderStatusBar]: grand total, people count and budget badge
//   - [RenderHelpBar]: key hints generated from the keymap
package view
