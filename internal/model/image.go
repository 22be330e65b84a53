package model

import (
	"encoding/json"
)

// ImageRecord is one wallpaper entry served by the remote image directory.
// It is immutable once fetched.
type ImageRecord struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	URL      string `json:"url"` // relative to the directory base URL
}

// UnmarshalJSON accepts both "id" and the "_id" key some deployments of the
// directory emit.
func (r *ImageRecord) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID       string `json:"id"`
		MongoID  string `json:"_id"`
		Title    string `json:"title"`
		Category string `json:"category"`
		URL      string `json:"url"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.ID = raw.ID
	if r.ID == "" {
		r.ID = raw.MongoID
	}
	r.Title = raw.Title
	r.Category = raw.Category
	r.URL = raw.URL
	return nil
}

// DownloadFilename returns the local file name used when the record is saved.
func (r ImageRecord) DownloadFilename() string {
	return r.Title + ".jpg"
}

// CatalogState is a snapshot of the fetched catalog and the active filter.
type CatalogState struct {
	All        []ImageRecord
	Categories []string
	Selected   string // empty means no filter
	Visible    []ImageRecord
}

// Clone returns a deep copy so callers cannot alias the store's slices.
func (s CatalogState) Clone() CatalogState {
	return CatalogState{
		All:        append([]ImageRecord(nil), s.All...),
		Categories: append([]string(nil), s.Categories...),
		Selected:   s.Selected,
		Visible:    append([]ImageRecord(nil), s.Visible...),
	}
}

// DownloadNotice is the outcome of the most recent download attempt, shown
// as a dismissible modal.
type DownloadNotice struct {
	Visible bool
	Success bool
	Title   string
	Message string
}
