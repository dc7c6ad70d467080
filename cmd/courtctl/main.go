// Command courtctl is the operator CLI for the court-data resolution
// service.
package main

import "github.com/nandeeshlaxetti-prog/courtdata/internal/interfaces/cli"

func main() {
	cli.Execute()
}
