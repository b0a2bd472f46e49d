// cmd/main.go
package main

import cmd "github.com/mwiater/statcli/cmd/statcli"

// main starts the statcli application by delegating to the cobra root
// command defined in the statcli package.
func main() {
	cmd.Execute()
}
