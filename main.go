package main

import "github.com/taxatools/taxadist/cmd"

func main() {
	cmd.Execute()
}
