package model

// HistoryEntry records one successfully processed video.
//
// Entries are immutable once created and rendered by the shell as a row of
// title, author and URL.
type HistoryEntry struct {
	Author string
	Title  string
	URL    string
}

// NewHistoryEntry builds the entry for a processed reference.
func NewHistoryEntry(ref VideoReference, meta *VideoMetadata) HistoryEntry {
	return HistoryEntry{
		Author: meta.Author,
		Title:  meta.Title,
		URL:    ref.URL,
	}
}
