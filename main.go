package main

import "sheetflow/cmd"

func main() {
	cmd.Execute()
}
