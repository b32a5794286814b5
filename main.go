package main

import "github.com/alorahq/hr-portal/cmd"

func main() {
	cmd.Execute()
}
