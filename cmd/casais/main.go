package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aussiebroadwan/casais/internal/casais/app"
	"github.com/aussiebroadwan/casais/internal/casais/domain"
)

const usage = `usage:
  casais                     run the API server
  casais promote <username>  grant the leader role
  casais demote <username>   revoke the leader role`

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if len(os.Args) > 1 {
		if err := runCommand(application, os.Args[1:]); err != nil {
			log.Fatalf("%s: %v", os.Args[1], err)
		}
		return
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}

// runCommand handles the admin subcommands. Role changes have no HTTP route.
func runCommand(application *app.Application, args []string) error {
	defer application.Close()

	role := ""
	switch args[0] {
	case "promote":
		role = domain.RoleLeader
	case "demote":
		role = domain.RoleUser
	default:
		return fmt.Errorf("unknown command\n%s", usage)
	}
	if len(args) != 2 {
		return fmt.Errorf("missing username\n%s", usage)
	}

	if err := application.SetRole(context.Background(), args[1], role); err != nil {
		return err
	}
	fmt.Printf("%s is now %s\n", args[1], role)
	return nil
}
