package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"campus_nav/internal/graph"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Valida la configuración del campus",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(cmd)
		if err != nil {
			return err
		}
		defer env.close()

		data, err := env.source.LoadCampus(cmd.Context())
		if err != nil {
			return err
		}
		g, err := graph.Build(data)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "OK: %d nodos, %d conexiones, %d bloqueos\n", g.Len(), len(data.Edges), len(data.BlockedPaths))
		for _, b := range g.UnmatchedBlocks() {
			fmt.Fprintf(out, "aviso: el bloqueo %s -> %s no coincide con ninguna conexión\n", b.From, b.To)
		}
		if start, _ := cmd.Flags().GetString("from"); start != "" {
			_, inaccessible := graph.Reachability(g, start)
			for _, id := range inaccessible {
				fmt.Fprintf(out, "inaccesible desde %s: %s\n", start, id)
			}
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().String("from", "", "Reporta los nodos inaccesibles desde esta ubicación")
	rootCmd.AddCommand(validateCmd)
}
