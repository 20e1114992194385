package main

import "github.com/KaramelBytes/csvreport-cli/cmd"

func main() {
	cmd.Execute()
}
