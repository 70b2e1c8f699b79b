package main

import "github.com/oshokin/alarm-clock/cmd/alarmctl/cmd"

func main() {
	cmd.Execute()
}
