// Package cli implementa petctl, la herramienta de línea de comandos del
// registro: migraciones de esquema, carga de datos de ejemplo y consulta
// de estadísticas contra una instancia en marcha.
package cli

import "github.com/spf13/cobra"

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "petctl",
		Short: "Herramientas de administración del registro de animales",
	}

	root.AddCommand(
		newMigrateCmd(),
		newSeedCmd(),
		newStatsCmd(),
	)

	return root
}
