package main

import "file-vault/cmd"

func main() {
	cmd.Execute()
}
