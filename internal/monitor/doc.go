// Package monitor implements the clipboard polling loop.
//
// A Loop reads the clipboard on a fixed interval. When the text is a video
// URL that differs from the last processed one, the loop clears the
// clipboard, resolves the video, downloads its audio track and appends a
// history entry:
//
//	idle -> detected -> resolving -> downloading -> recorded -> idle
//
// Items that fail to resolve or download are dropped and the loop goes back
// to idle. Quit moves the loop to the terminal stopped state from any other
// state.
//
// # Basic Usage
//
//	loop := monitor.New(settings, source, fetcher, executor, ledger, logger)
//	loop.OnEvent(func(e monitor.Event) {
//	    if e.Kind == monitor.EventRecorded {
//	        fmt.Println(e.Notification.Message)
//	    }
//	})
//
//	go loop.Run(ctx)
//	...
//	loop.ToggleTestMode()
//	loop.Quit()
//
// Only the immediately preceding URL is suppressed; copying A, B, A
// processes A twice.
package monitor
