package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all journal data and start over from onboarding",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			fmt.Fprint(cmd.OutOrStdout(), "This erases the profile and every log. Type 'yes' to continue: ")
			reader := bufio.NewReader(cmd.InOrStdin())
			answer, _ := reader.ReadString('\n')
			if strings.TrimSpace(answer) != "yes" {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		appLogger, err := newLogger()
		if err != nil {
			return err
		}
		defer appLogger.Sync()

		documents, err := openDocumentStore(cfg, appLogger)
		if err != nil {
			return err
		}

		if err := documents.Clear(); err != nil {
			return fmt.Errorf("erase data: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "All data erased. The next start begins at onboarding.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Skip the confirmation prompt")
}
