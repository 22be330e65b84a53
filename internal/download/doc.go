package download

// Package download implements the image download pipeline: a single HTTP GET
// streamed into the downloads directory. It tracks one task per invocation and
// propagates task transitions to the UI through an update callback.
