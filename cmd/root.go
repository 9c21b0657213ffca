package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"campus_nav/internal/config"
	"campus_nav/internal/database"
	"campus_nav/internal/logging"
	"campus_nav/internal/repositories"
	"campus_nav/internal/services"
)

var rootCmd = &cobra.Command{
	Use:           "campus",
	Short:         "Navegación interna del campus",
	Long:          `Calcula rutas entre ubicaciones del colegio (aulas, pasillos, escaleras) respetando los pasos bloqueados.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("env-file", "", "Archivo .env opcional")
	rootCmd.PersistentFlags().String("campus-file", "", "Archivo YAML/JSON del campus (reemplaza CAMPUS_FILE)")
	rootCmd.PersistentFlags().String("source", "", "Fuente del campus: file o neo4j (reemplaza CAMPUS_SOURCE)")
}

// runtimeEnv agrupa lo que comparten los subcomandos.
type runtimeEnv struct {
	cfg    *config.Config
	logger *slog.Logger
	source services.CampusSource
	close  func()
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}
	if v, _ := cmd.Flags().GetString("campus-file"); v != "" {
		cfg.CampusFile = v
	}
	if v, _ := cmd.Flags().GetString("source"); v != "" {
		cfg.CampusSource = v
	}
	return cfg, cfg.Validate()
}

func setup(cmd *cobra.Command) (*runtimeEnv, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	env := &runtimeEnv{cfg: cfg, logger: logger, close: func() {}}
	switch cfg.CampusSource {
	case config.SourceNeo4j:
		db, err := openNeo4j(cmd.Context(), cfg)
		if err != nil {
			return nil, err
		}
		env.source = repositories.NewNeo4jCampusRepository(db.Driver, db.Database)
		env.close = func() {
			if err := db.Close(context.Background()); err != nil {
				logger.Warn("closing neo4j driver", "error", err)
			}
		}
	default:
		env.source = repositories.NewFileCampusRepository(cfg.CampusFile)
	}
	return env, nil
}

func openNeo4j(ctx context.Context, cfg *config.Config) (*database.Neo4jDatabase, error) {
	return database.NewNeo4jDatabase(ctx, cfg.Neo4jURI, cfg.Neo4jUser, cfg.Neo4jPassword, cfg.Neo4jDatabase)
}
