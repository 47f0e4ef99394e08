package display

import (
	"os"

	"gopkg.in/cheggaaa/pb.v1"
)

// StartProgress returns a started progress bar over total dataset
// completions, written to stderr so it never interleaves with the report on
// stdout. Increment is safe to call from multiple workers.
func StartProgress(total int) *pb.ProgressBar {
	bar := pb.New(total)
	bar.Output = os.Stderr
	bar.ShowTimeLeft = false
	return bar.Start()
}
