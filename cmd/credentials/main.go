// Command credentials is the combined account-provisioning dispatcher: a
// leading moderator/superadmin selector followed by the credentials.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/erenyil/enrollhub/internal/cli"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage:")
		fmt.Println("  Create moderator: credentials moderator <username> <email> <password>")
		fmt.Println("  Create superadmin: credentials superadmin <username> <email> <password>")
		os.Exit(1)
	}

	userType := strings.ToLower(os.Args[1])
	if userType != "moderator" && userType != "superadmin" {
		fmt.Println("Error: First argument must be either 'moderator' or 'superadmin'")
		os.Exit(1)
	}

	if len(os.Args) != 5 {
		fmt.Printf("Usage: credentials %s <username> <email> <password>\n", userType)
		os.Exit(1)
	}

	username, email, password := os.Args[2], os.Args[3], os.Args[4]

	var err error
	if userType == "moderator" {
		err = cli.RunModerator(username, email, password)
	} else {
		err = cli.RunSuperadmin(username, email, password)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done!")
}
