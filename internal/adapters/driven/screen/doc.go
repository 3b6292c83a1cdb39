// Package screen provides Screen adapters that stand in for the active
// window of a device.
//
// FileScreen treats a file as the window: each capture reads the file and
// flattens it through a text source registry. TextScreen serves fixed
// content, such as text piped on standard input. Watcher turns file change
// notifications into content-changed signals for a scan session.
package screen
