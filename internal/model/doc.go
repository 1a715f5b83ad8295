// Package model defines domain data structures used across the app: courses,
// curriculum records and their normalized chapter tree, and the status enums
// driving authentication and per-control link resolution. Structures are
// designed for direct binding in the UI and explicit state transitions.
package model
