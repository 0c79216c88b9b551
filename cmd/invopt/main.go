// Command invopt is the command-line front end of the inventory optimizer.
package main

import "github.com/guttosm/inventory-optimizer/internal/cli"

func main() {
	cli.Execute()
}
