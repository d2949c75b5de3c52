// Package youtube recognizes YouTube URLs and resolves them to audio streams.
//
// The package handles the two network-free and network-bound halves of
// detection:
//
//  1. Classify accepts clipboard text starting with https://www.youtube.com/
//  2. Fetcher resolves the URL to author, title and an audio-only stream
//
// # Classification
//
//	ref, ok := youtube.Classify(text)
//	if !ok {
//	    return // not a video URL, nothing to do
//	}
//
// # Resolution
//
//	fetcher := youtube.NewFetcher(client.Standard())
//	meta, err := fetcher.Fetch(ctx, ref)
//	if err != nil {
//	    log.Printf("dropping %s: %v", ref.URL, err)
//	}
//
// Format selection follows the usual audio-only rules: formats with audio
// channels and no video dimensions, audio/mp4 first, highest bitrate wins.
package youtube
