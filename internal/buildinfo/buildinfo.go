// Package buildinfo reports the version data stamped in at link time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/projectboard/internal/buildinfo.buildVersion=v1.2.0 \
//	  -X github.com/dmitrijs2005/projectboard/internal/buildinfo.buildCommit=$(git rev-parse --short HEAD) \
//	  -X 'github.com/dmitrijs2005/projectboard/internal/buildinfo.buildDate=$(date -u)'"
package buildinfo

import (
	"fmt"
	"io"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// PrintBuildData writes version, date and commit to w, one per line.
// Values that were not set at link time print as "N/A".
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", orNA(buildVersion))
	fmt.Fprintf(w, "Build date: %s\n", orNA(buildDate))
	fmt.Fprintf(w, "Build commit: %s\n", orNA(buildCommit))
}
