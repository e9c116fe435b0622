package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gosimple/slug"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/velichko-dev/inkline/auth"
	"github.com/velichko-dev/inkline/config"
	"github.com/velichko-dev/inkline/db"
	"github.com/velichko-dev/inkline/db/upperdb"
)

// inkline-admin performs the administration the web surface deliberately
// lacks: creating groups and accounts.

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "inkline-admin",
		Short: "Administration commands for the inkline service",
	}
	root.AddCommand(groupCmd())
	root.AddCommand(userCmd())
	return root
}

func groupCmd() *cobra.Command {
	var title, groupSlug, description string

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a topical group",
		RunE: func(cmd *cobra.Command, args []string) error {
			if groupSlug == "" {
				groupSlug = slug.Make(title)
			}
			database, err := connect()
			if err != nil {
				return err
			}
			defer database.Close()

			id, err := database.CreateGroup(context.Background(), &db.CreateGroup{
				Title:       title,
				Slug:        groupSlug,
				Description: description,
			})
			if err != nil {
				return err
			}
			fmt.Printf("created group %d (%s)\n", id, groupSlug)
			return nil
		},
	}
	create.Flags().StringVar(&title, "title", "", "group title")
	create.Flags().StringVar(&groupSlug, "slug", "", "group slug (derived from title when omitted)")
	create.Flags().StringVar(&description, "description", "", "group description")
	create.MarkFlagRequired("title")

	group := &cobra.Command{
		Use:   "group",
		Short: "Manage groups",
	}
	group.AddCommand(create)
	return group
}

func userCmd() *cobra.Command {
	var username, password string

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a user account",
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := auth.HashPassword(password)
			if err != nil {
				return err
			}
			database, err := connect()
			if err != nil {
				return err
			}
			defer database.Close()

			id, err := database.CreateUser(context.Background(), &db.CreateUser{
				Username:     username,
				PasswordHash: hash,
			})
			if err != nil {
				return err
			}
			fmt.Printf("created user %d (%s)\n", id, username)
			return nil
		},
	}
	create.Flags().StringVar(&username, "username", "", "username")
	create.Flags().StringVar(&password, "password", "", "password")
	create.MarkFlagRequired("username")
	create.MarkFlagRequired("password")

	user := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}
	user.AddCommand(create)
	return user
}

func connect() (db.Database, error) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}
	if cfg.DBDriver == "sqlite" {
		return upperdb.NewSQLite(cfg.DBPath)
	}
	return upperdb.NewMySQL(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBName)
}
