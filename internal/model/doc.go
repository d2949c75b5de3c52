// Package model defines the core data structures used throughout
// tube-clipper.
//
// # References and Metadata
//
// A VideoReference is a clipboard string accepted as a video URL. Resolving
// it yields VideoMetadata with the author, title and an opaque AudioStream:
//
//	meta, err := fetcher.Fetch(ctx, model.VideoReference{URL: url})
//	body, size, err := meta.Stream.Open(ctx)
//
// # History
//
// HistoryEntry is the row recorded for every processed video:
//
//	entry := model.NewHistoryEntry(ref, meta)
//	fmt.Println(entry.Title, entry.Author, entry.URL)
//
// # File Names
//
// AudioFileName derives "{author} - {title}.{ext}" with "/" replaced by "-":
//
//	name := model.AudioFileName("A/B", "C", "mp4", model.FileNamePolicySlash)
//	// "A-B - C.mp4"
//
// # Errors
//
// ResolutionError and DownloadError wrap failures of the two network-bound
// pipeline stages. Both support errors.As / errors.Unwrap.
package model
