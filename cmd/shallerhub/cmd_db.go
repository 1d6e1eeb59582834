package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/shallerhub/database/seeders"
	"github.com/shashiranjanraj/shallerhub/internal/server"
	"github.com/shashiranjanraj/shallerhub/pkg/migration"
	"github.com/shashiranjanraj/shallerhub/pkg/mongodb"
)

// shallerhub migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run all pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := server.Boot(); err != nil {
			return err
		}
		defer mongodb.Disconnect()

		fmt.Println("Running migrations…")
		return migration.New(mongodb.DB()).Run(context.Background())
	},
}

// shallerhub migrate:rollback
var migrateRollbackCmd = &cobra.Command{
	Use:   "migrate:rollback",
	Short: "Rollback the last batch of migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := server.Boot(); err != nil {
			return err
		}
		defer mongodb.Disconnect()

		fmt.Println("Rolling back last batch…")
		return migration.New(mongodb.DB()).Rollback(context.Background())
	},
}

// shallerhub migrate:status
var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show the status of each migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := server.Boot(); err != nil {
			return err
		}
		defer mongodb.Disconnect()

		return migration.New(mongodb.DB()).Status(context.Background())
	},
}

// shallerhub seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all database seeders (provisions the default admin)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := server.Boot(); err != nil {
			return err
		}
		defer mongodb.Disconnect()

		fmt.Println("Running seeders…")
		return seeders.RunAll(context.Background())
	},
}
