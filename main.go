package main

import "github.com/nikogura/creatoros/cmd"

func main() {
	cmd.Execute()
}
