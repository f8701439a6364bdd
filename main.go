package main

import (
	"github.com/gkalanidhi/maplens/cmd"
)

func main() {
	cmd.Execute()
}
