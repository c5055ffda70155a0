package main

import "roster-etl/cmd"

func main() {
	cmd.Execute()
}
