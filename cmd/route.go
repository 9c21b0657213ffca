package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"campus_nav/internal/logging"
	"campus_nav/internal/pathfinding"
	"campus_nav/internal/services"
)

var routeCmd = &cobra.Command{
	Use:   "route FROM TO",
	Short: "Calcula la ruta entre dos ubicaciones",
	Args:  cobra.ExactArgs(2),
	RunE:  runRoute,
}

func init() {
	routeCmd.Flags().Bool("json", false, "Imprime el resultado como JSON")
	rootCmd.AddCommand(routeCmd)
}

func runRoute(cmd *cobra.Command, args []string) error {
	env, err := setup(cmd)
	if err != nil {
		return err
	}
	defer env.close()

	svc := services.NewNavigationService(env.source, logging.NewNop(), nil, pathfinding.Options{MaxOpenSet: env.cfg.MaxOpenSet})
	if err := svc.Reload(cmd.Context()); err != nil {
		return err
	}

	result, ok, err := svc.FindRoute(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if !ok {
		fmt.Fprintf(out, "No hay ruta disponible de %s a %s\n", args[0], args[1])
		return nil
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprintf(out, "Ruta %s -> %s (%g s)\n", args[0], args[1], result.TotalDistance)
	for i, step := range result.Steps {
		marker := ""
		if step.FloorChange {
			marker = " [cambio de piso]"
		}
		fmt.Fprintf(out, "%2d. %s (%g s)%s\n", i+1, step.Instruction, step.Distance, marker)
	}
	return nil
}
