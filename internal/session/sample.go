package session

import (
	"os"

	"github.com/mgpai22/csv2srt/internal/convert"
)

const SampleFileName = "sample.csv"

// SampleCSV is a two cue example using the default header names.
var SampleCSV = convert.DefaultHeaderMapping.StartTime + "," +
	convert.DefaultHeaderMapping.EndTime + "," +
	convert.DefaultHeaderMapping.Text + "\n" +
	`"00:00:01,000","00:00:03,000","Hello, world!"` + "\n" +
	`"00:00:04,000","00:00:06,000","This is a sample subtitle."` + "\n"

// WriteSample saves SampleCSV to path.
func WriteSample(path string) error {
	return os.WriteFile(path, []byte(SampleCSV), 0644)
}
