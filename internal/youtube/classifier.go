package youtube

import (
	"strings"

	"github.com/handiism/tube-clipper/internal/model"
)

// CanonicalPrefix is the only URL prefix accepted from the clipboard.
const CanonicalPrefix = "https://www.youtube.com/"

// Classify decides whether a clipboard snapshot is a candidate video URL.
//
// The snapshot is accepted only when it starts with CanonicalPrefix. Nothing
// else is checked here; malformed IDs are left to the Fetcher.
func Classify(snapshot string) (model.VideoReference, bool) {
	if snapshot == "" || !strings.HasPrefix(snapshot, CanonicalPrefix) {
		return model.VideoReference{}, false
	}
	return model.VideoReference{URL: snapshot}, true
}
