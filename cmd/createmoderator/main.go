// Command createmoderator creates or upgrades a moderator account and
// attaches the moderator permission.
package main

import (
	"fmt"
	"os"

	"github.com/erenyil/enrollhub/internal/cli"
)

func main() {
	if len(os.Args) != 4 {
		fmt.Println("Usage: createmoderator <username> <email> <password>")
		os.Exit(1)
	}

	if err := cli.RunModerator(os.Args[1], os.Args[2], os.Args[3]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done!")
}
