// main.go
//
// Entry point for the terminal Wordle client. Everything lives behind the
// cobra command tree in internal/cli.

package main

import "github.com/robalobadob/wordle/apps/go-term/internal/cli"

func main() {
	cli.Execute()
}
