// Package resolve implements the per-control resolution workflow: lazy video
// quality discovery and just-in-time download-link resolution. Each control
// (one per lecture video, one per attachment) owns a small state machine;
// resolved URLs are deliberately never cached, since they may be short-lived
// or one-time.
package resolve
