/*
cosmoconv converts between redshifts, scale factors, distances and times in
FLRW cosmologies. Run "cosmoconv help" for a list of commands.
*/
package main

import "github.com/phil-mansfield/cosmoconv/cmd"

func main() {
	cmd.Execute()
}
