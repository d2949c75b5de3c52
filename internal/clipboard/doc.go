// Package clipboard provides the clipboard sources polled by the monitor.
//
// System talks to the OS clipboard through github.com/atotto/clipboard and
// must be created once at startup so a missing backend fails fast:
//
//	src, err := clipboard.NewSystem(logger)
//	if errors.Is(err, clipboard.ErrUnavailable) {
//	    // install xclip / xsel / wl-clipboard
//	}
//
// Memory holds the text in process and is meant for tests.
package clipboard
