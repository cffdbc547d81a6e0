// Command shakplay drives a ShakPlay client session from the terminal. The
// session token is kept in the configured token store between runs.
package main

import (
	"fmt"
	"os"
)

func main() {
	rootCmd, closeApp := newRootCmd(openApp)
	err := rootCmd.Execute()
	closeApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
