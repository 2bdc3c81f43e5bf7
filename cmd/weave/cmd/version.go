package cmd

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  "Print the CLI version and build time.",
		Usage: "weave version",
		Run: func(args []string) error {
			printVersion()
			return nil
		},
	})
}
