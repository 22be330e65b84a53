package catalog

// Package catalog fetches wallpaper records from the remote image directory
// and keeps the in-memory catalog: the full record set, the derived category
// list, the selected category and the visible subset.
