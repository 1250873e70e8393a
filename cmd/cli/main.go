package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"photo-vault-go/pkg/cli"
	"photo-vault-go/pkg/cli/logger"
	"photo-vault-go/pkg/config"
)

func main() {
	var (
		listMode = flag.Bool("list", false, "List active photos")
		binMode  = flag.Bool("bin", false, "List photos in the recycle bin")

		uploadFile = flag.String("upload", "", "Upload a photo from the given file path")
		title      = flag.String("title", "", "Photo title (used with -upload)")
		desc       = flag.String("desc", "", "Photo description (used with -upload)")

		deleteID  = flag.String("delete", "", "Move a photo to the recycle bin by id")
		restoreID = flag.String("restore", "", "Restore a photo from the recycle bin by id")
		emptyBin  = flag.Bool("empty-bin", false, "Permanently delete every photo in the recycle bin")
		shareID   = flag.String("share", "", "Create a share link for a photo by id")
		sharedTok = flag.String("shared", "", "Look up a shared photo by token")

		// Registration
		register  = flag.Bool("register", false, "Register a new user account")
		firstName = flag.String("first-name", "", "First name (used with -register)")
		lastName  = flag.String("last-name", "", "Last name (used with -register)")
		email     = flag.String("email", "", "Email address (used with -register)")

		// Config commands
		configShow = flag.Bool("config-show", false, "Show current configuration")
		configSet  = flag.String("config-set", "", "Set a config value (format: section.key=value)")
	)
	flag.Parse()
	defer logger.CloseLog()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	app := cli.NewApp(cfg)

	// Handle config commands first (don't need a server)
	if *configShow {
		app.ShowConfig()
		return
	}
	if *configSet != "" {
		if err := app.SetConfig(*configSet); err != nil {
			log.Fatalf("failed to set config: %v", err)
		}
		fmt.Println("Configuration updated successfully")
		return
	}

	if *register {
		if *email == "" {
			log.Fatal("-register requires -email")
		}
		if err := app.RegisterUser(*firstName, *lastName, *email); err != nil {
			log.Fatalf("failed to register user: %v", err)
		}
		return
	}

	switch {
	case *listMode:
		app.ListPhotos()
	case *binMode:
		app.ListRecycleBin()
	case *uploadFile != "":
		if *title == "" {
			log.Fatal("-upload requires -title")
		}
		app.UploadPhoto(*uploadFile, *title, *desc)
	case *deleteID != "":
		app.DeletePhoto(*deleteID)
	case *restoreID != "":
		app.RestorePhoto(*restoreID)
	case *emptyBin:
		app.EmptyRecycleBin()
	case *shareID != "":
		app.SharePhoto(*shareID)
	case *sharedTok != "":
		app.ShowSharedPhoto(*sharedTok)
	default:
		// Interactive TUI mode
		if err := app.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}
