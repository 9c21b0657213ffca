package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"campus_nav/internal/campusdata"
	"campus_nav/internal/graph"
	"campus_nav/internal/repositories"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Carga el campus en Neo4j",
	Long:  `Aplica el esquema Cypher y reemplaza el grafo almacenado en Neo4j por el campus del archivo indicado (o el campus embebido).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		data, err := campusdata.Load(cfg.CampusFile)
		if err != nil {
			return err
		}
		if _, err := graph.Build(data); err != nil {
			return err
		}

		db, err := openNeo4j(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer db.Close(cmd.Context())

		if schema, _ := cmd.Flags().GetString("schema"); schema != "" {
			if err := db.ExecuteCypherFile(cmd.Context(), schema); err != nil {
				return fmt.Errorf("apply schema: %w", err)
			}
		}
		repo := repositories.NewNeo4jCampusRepository(db.Driver, db.Database)
		if err := repo.ImportCampus(cmd.Context(), data); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Datos iniciales cargados correctamente: %d nodos, %d conexiones, %d bloqueos\n",
			len(data.Nodes), len(data.Edges), len(data.BlockedPaths))
		return nil
	},
}

func init() {
	seedCmd.Flags().String("schema", "scripts/schema.cypher", "Script Cypher con restricciones e índices")
	rootCmd.AddCommand(seedCmd)
}
