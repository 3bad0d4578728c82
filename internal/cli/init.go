package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/pipegen/internal/app"
	"github.com/tacogips/pipegen/internal/pipeline"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a CI pipeline for the project at path",
	Long: `Detect the project type, ask a few questions and write the pipeline under .ci/.

Answers are collected interactively unless --answers or --yes is given.
Existing files are kept unless --force is set.

Examples:
  pipegen init
  pipegen init ./service --dry-run
  pipegen init --yes --type node-app-service
  pipegen init --answers pipeline-answers.yaml --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

// answerFlags are shared by init and plan.
type answerFlags struct {
	answersFile string
	name        string
	repository  string
	deployType  string
	configPath  string
}

func (f *answerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.answersFile, FlagAnswers, "", DescAnswers)
	cmd.Flags().StringVar(&f.name, FlagName, "", DescName)
	cmd.Flags().StringVar(&f.repository, FlagRepository, "", DescRepository)
	cmd.Flags().StringVar(&f.deployType, FlagType, "", DescType)
	cmd.Flags().StringVarP(&f.configPath, FlagConfig, "c", "", DescConfig)
}

func (f *answerFlags) overrides() app.Overrides {
	return app.Overrides{
		Name:           f.name,
		RepositoryURL:  f.repository,
		DeploymentType: pipeline.DeploymentType(f.deployType),
	}
}

// fileAnswers returns an AnswerFunc for --answers, or nil when unset.
func (f *answerFlags) fileAnswers() (app.AnswerFunc, error) {
	if f.answersFile == "" {
		return nil, nil
	}
	answers, err := app.LoadAnswers(f.answersFile)
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context, d *app.Discovery) (pipeline.PipelineAnswers, error) {
		return answers, nil
	}, nil
}

var (
	initFlags   answerFlags
	initYes     bool
	initForce   bool
	initDryRun  bool
	initVerbose bool
)

func init() {
	initFlags.register(initCmd)
	initCmd.Flags().BoolVarP(&initYes, FlagYes, "y", false, DescYes)
	initCmd.Flags().BoolVarP(&initForce, FlagForce, "f", false, DescForce)
	initCmd.Flags().BoolVarP(&initDryRun, FlagDryRun, "n", false, DescDryRun)
	initCmd.Flags().BoolVarP(&initVerbose, FlagVerbose, "v", false, DescVerbose)
}

func runInit(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	cfg, err := loadConfig(initFlags.configPath)
	if err != nil {
		return err
	}

	answer, err := initFlags.fileAnswers()
	if err != nil {
		return err
	}
	if answer == nil && !initYes {
		printBanner()
		answer = PromptAnswers
	}

	opts := app.InitOptions{
		DiscoverOptions: app.DiscoverOptions{Root: root, Config: cfg},
		Answer:          answer,
		Overrides:       initFlags.overrides(),
		Overwrite:       initForce,
		DryRun:          initDryRun,
	}

	result, err := app.Init(cmd.Context(), opts)
	if err != nil {
		return err
	}

	printVerbose(initVerbose, fmt.Sprintf("Project root: %s", result.Discovery.Root))
	printVerbose(initVerbose, fmt.Sprintf("Deployment type: %s", result.Configuration.DeploymentType))
	if initDryRun {
		printHeader("Dry run")
	} else {
		printHeader("Pipeline files")
	}
	printFileResults(result.Files, initDryRun, initVerbose)

	summary := fmt.Sprintf("%d created, %d overwritten, %d skipped",
		result.Files.FilesCreated, result.Files.FilesOverwritten, result.Files.FilesSkipped)
	if initDryRun {
		printInfo("\nNo files were written (" + summary + ")")
	} else {
		printInfo("")
		printSuccess(fmt.Sprintf("Pipeline %s ready: %s", result.Configuration.PipelineName, summary))
	}
	return nil
}
