package main

import "github.com/jsphweid/midimml/cmd"

func main() {
	cmd.Execute()
}
