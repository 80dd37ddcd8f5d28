package main

import (
	"fmt"
	"os"

	"github.com/dementa/mjs/app/config"
	"github.com/dementa/mjs/app/database"
	"github.com/dementa/mjs/app/models"
)

func main() {
	if len(os.Args) != 5 {
		fmt.Println("Usage: add_user <first_name> <last_name> <email> <password>")
		os.Exit(1)
	}

	config.Load()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		return
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		fmt.Printf("Error running migrations: %v\n", err)
		return
	}

	user := &models.User{
		FirstName: os.Args[1],
		LastName:  os.Args[2],
		Email:     os.Args[3],
		Password:  os.Args[4],
	}

	if err := database.CreateStaffUser(db, user, "admin"); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		return
	}

	fmt.Printf("User created successfully: %s %s (%s)\n", user.FirstName, user.LastName, user.Email)
}
