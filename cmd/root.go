package cmd

import (
	"fmt"

	"github.com/edu-resource/dbreset/internal/config"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Version = "1.0.0"

func showBanner() {
	greenColor := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔════════════════════════════════════════════════════╗",
		"║                                                    ║",
		"║        EDU-RESOURCE DATABASE RESET UTILITY         ║",
		"║                                                    ║",
		"╚════════════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		greenColor.Println(line)
	}

	fmt.Print("                 ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "dbreset",
	Short: "Administrative tool for the Edu-Resource MongoDB database",
	Long: `
dbreset administers the Edu-Resource LMS database.

It can inspect the current collections or irreversibly drop every
collection in the target database. The target is read from the
MONGODB_URI environment variable (a .env file is honored) and
defaults to ` + config.DefaultMongoURI + `.

⚠️  The reset command permanently deletes all data. Use with caution.`,

	SilenceUsage: true,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("dbreset version %s\n", Version)
			return
		}

		showBanner()
		fmt.Println()
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("force", "f", false, "Skip confirmation prompts")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	viper.SetDefault("mongodb_uri", config.DefaultMongoURI)
	viper.BindEnv("mongodb_uri", "MONGODB_URI")
	viper.AutomaticEnv()
}
