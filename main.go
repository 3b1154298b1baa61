package main

import "github.com/atomicstack/loandesk/internal/cli"

func main() {
	cli.Execute()
}
