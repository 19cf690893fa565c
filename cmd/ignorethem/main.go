package main

import (
	"os"

	"github.com/JoodasCode/ignorethem-sub001/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()
	rootCmd.AddCommand(commands.NewCmd())
	rootCmd.AddCommand(commands.ListCmd())
	rootCmd.AddCommand(commands.CheckCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
