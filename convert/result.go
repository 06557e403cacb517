package convert

import "github.com/docforge/convertd/format"

// Result is the outcome of one successful conversion. Ownership passes to
// the caller; the scratch files behind it remain in the staging filesystem
// until a later request overwrites them.
type Result struct {
	// OutputFileName is the destination file's name within the staging root.
	OutputFileName string

	// Category is the coarse document kind of the converted document.
	Category format.Category

	// Payload is the produced file's bytes.
	Payload []byte

	// Media maps "media/<name>" to the raw bytes of each embedded asset the
	// engine extracted. Nil when the operation does not collect media.
	Media map[string][]byte
}
