package cli

import (
	"context"
	"errors"
	"fmt"

	"pet-registry/internal/adapters/storage/postgres"
	"pet-registry/internal/adapters/storage/sqlite"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var dsn string
	var sqlitePath string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Aplica el esquema sobre la base de datos elegida",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case dsn != "" && sqlitePath != "":
				return errors.New("choose either --dsn or --sqlite, not both")
			case dsn != "":
				db, err := postgres.Open(dsn)
				if err != nil {
					return err
				}
				defer db.Close()
				if err := postgres.Migrate(context.Background(), db); err != nil {
					return err
				}
				fmt.Println("postgres schema up to date")
				return nil
			case sqlitePath != "":
				// sqlite.Open ya aplica las migraciones al abrir.
				db, err := sqlite.Open(sqlitePath)
				if err != nil {
					return err
				}
				defer db.Close()
				fmt.Printf("sqlite schema up to date (%s)\n", sqlitePath)
				return nil
			default:
				return errors.New("one of --dsn or --sqlite is required")
			}
		},
	}

	cmd.Flags().StringVar(&dsn, "dsn", "", "Postgres DSN (postgres://...)")
	cmd.Flags().StringVar(&sqlitePath, "sqlite", "", "Ruta del fichero SQLite")

	return cmd
}
