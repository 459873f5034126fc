package cdcl

import "github.com/kr/pretty"

// DumpStats pretty-prints s to stdout, for -v tracing (F.1). It is a
// thin wrapper so callers outside this package never need to import
// kr/pretty directly just to inspect a Solution's Stats.
func DumpStats(s Stats) {
	pretty.Println(s)
}
