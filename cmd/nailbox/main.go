// nailbox - step through string art thread sequences on a nail box.
package main

import (
	"github.com/SeamusWaldron/nailbox/internal/cli"
)

func main() {
	cli.Execute()
}
