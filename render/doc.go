// Package render defines the content contract shared by every export
// format.
//
// A [Document] is built exactly once per export from the letter, the sender
// profile, and the export options. All renderers consume the same Document,
// so the visible content is identical across PDF, DOCX, TXT, and HTML: only
// the physical encoding differs. The render date is computed at build time
// and threaded through, keeping repeated renders of one call byte-stable.
//
// Renderers implement [Renderer] and report non-fatal limitations (such as
// the plain-text format's lack of watermark support) as warnings rather
// than dropping them silently.
package render
