// Command createadmin creates or upgrades a full administrator account.
package main

import (
	"fmt"
	"os"

	"github.com/erenyil/enrollhub/internal/cli"
)

func main() {
	if len(os.Args) != 4 {
		fmt.Println("Usage: createadmin <username> <email> <password>")
		os.Exit(1)
	}

	if err := cli.RunSuperadmin(os.Args[1], os.Args[2], os.Args[3]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done!")
}
