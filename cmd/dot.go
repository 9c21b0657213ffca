package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"campus_nav/internal/graph"
)

var dotCmd = &cobra.Command{
	Use:   "dot",
	Short: "Exporta el grafo del campus en formato Graphviz",
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

		outPath, _ := cmd.Flags().GetString("out")
		if outPath == "" {
			return graph.WriteDOT(g, cmd.OutOrStdout())
		}
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		if err := graph.WriteDOT(g, f); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	},
}

func init() {
	dotCmd.Flags().StringP("out", "o", "", "Archivo de salida (por defecto stdout)")
	rootCmd.AddCommand(dotCmd)
}
