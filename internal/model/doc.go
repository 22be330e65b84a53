package model

// Package model defines domain data structures used across the app: image
// records, the catalog snapshot, download tasks and status enums. Structures
// are plain values so snapshots can be handed to the UI without sharing state.
