// Package main is the wakatimer entrypoint.
package main

import "github.com/mouse-blink/wakatimer/cmd"

func main() {
	cmd.Execute()
}
