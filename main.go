/*
age boots the engine and runs the testbed game.
*/
package main

import "github.com/spaghettifunk/age/cmd"

func main() {
	cmd.Execute()
}
