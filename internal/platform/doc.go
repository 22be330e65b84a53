package platform

// Package platform contains OS/platform integration: the downloads directory,
// filesystem helpers, the Android media scanner and OS open.
