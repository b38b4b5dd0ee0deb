package main

import "github.com/dayuer/airtable-mcp-go/cmd"

func main() {
	cmd.Execute()
}
