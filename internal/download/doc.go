// Package download provides the executor that writes audio tracks to disk.
//
// # Executor
//
// The Executor performs the last network-bound stage of the pipeline:
//
//  1. Skip everything when test mode is on
//  2. Ensure the download directory exists
//  3. Stream the audio track to "{author} - {title}.{ext}"
//  4. Save the video thumbnail next to it (optional)
//
// # Basic Usage
//
//	executor := download.NewExecutor(settings, httpClient, logger)
//
//	name := model.AudioFileName(meta.Author, meta.Title, meta.Stream.Extension(), policy)
//	err := executor.Execute(ctx, meta, settings.DownloadDirectory, name, false,
//	    func(written, total int64) {
//	        fmt.Printf("%d/%d\n", written, total)
//	    })
//
// # Errors
//
// Failures are returned as *model.DownloadError. Thumbnail failures are
// only logged and never fail the download.
package download
