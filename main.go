package main

import "catalog-webservice/cmd"

func main() {
	cmd.Execute()
}
