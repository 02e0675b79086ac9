package cli

import (
	"os"

	"github.com/spf13/cobra"

	"lg/nutrition-calc/internal/config"
	"lg/nutrition-calc/internal/logger"
)

// app carries state shared by every subcommand once the root pre-run hook has
// loaded config and the optional profile.
type app struct {
	envFile     string
	profilePath string
	debug       bool

	cfg     config.Config
	profile config.Profile
}

func Execute() {
	if err := execute(newRootCmd()); err != nil {
		os.Exit(1)
	}
}

// execute runs cmd and always drops the logger installed by setup; cobra
// skips post-run hooks when RunE fails.
func execute(cmd *cobra.Command) error {
	defer logger.Reset()
	return cmd.Execute()
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "nutrition-calc",
		Short:        "BMI, calorie, protein and water estimates from body measurements",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file with NUTRITION_* defaults (skipped if missing)")
	cmd.PersistentFlags().StringVar(&a.profilePath, "profile", "", "YAML body profile used when a flag is not given (default $NUTRITION_PROFILE)")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging to stderr")

	cmd.AddCommand(
		newBMICmd(a),
		newCaloriesCmd(a),
		newProteinCmd(a),
		newWaterCmd(a),
		newSummaryCmd(a),
		newDemoCmd(),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger.Setup(logger.Config{
		Out:   cmd.ErrOrStderr(),
		Debug: a.debug || cfg.Debug,
	})
	log := logger.L()
	log.Debug("config.loaded",
		"env_file", a.envFile,
		"protein_activity", cfg.ProteinActivity,
		"water_factor", cfg.WaterFactor)

	path := a.profilePath
	if path == "" {
		path = cfg.ProfilePath
	}
	if path != "" {
		p, err := config.LoadProfile(path)
		if err != nil {
			return err
		}
		a.profile = p
		log.Debug("profile.loaded", "path", path)
	}

	log.Debug("cli.command", "name", cmd.Name())
	return nil
}
