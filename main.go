package main

import "github.com/SatyaSire/corporatepm/cmd"

func main() {
	cmd.Execute()
}
