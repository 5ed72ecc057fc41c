package main

import (
	"github.com/glenglat/curator/cmd"

	// Register format serializers
	_ "github.com/glenglat/curator/format/csl"
	_ "github.com/glenglat/curator/format/zenodo"
)

func main() {
	cmd.Execute()
}
