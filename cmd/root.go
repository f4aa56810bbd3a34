// Package cmd implements the command-line interface for duet.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/duet-cli/duet/auth"
	"github.com/duet-cli/duet/color"
	"github.com/duet-cli/duet/constant"
	"github.com/duet-cli/duet/controller"
	"github.com/duet-cli/duet/icon"
	"github.com/duet-cli/duet/key"
	"github.com/duet-cli/duet/log"
	"github.com/duet-cli/duet/remote"
	"github.com/duet-cli/duet/selection"
	"github.com/duet-cli/duet/style"
	"github.com/duet-cli/duet/util"
	"github.com/duet-cli/duet/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/muesli/reflow/wrap"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd defines the entry point for the duet application.
// Without a subcommand it reports the live status of both participants.
var rootCmd = &cobra.Command{
	Use:   constant.Duet,
	Short: "Keep two remote-controlled media players in lockstep",
	Long: style.New().Italic(true).Foreground(color.HiPurple).
		Render("    - Keep two remote-controlled media players playing the same moment, together"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		console := newConsole()
		master, slave := remote.Participants()

		printParticipant(icon.Master, master, console.Query(master))
		printParticipant(icon.Slave, slave, console.Query(slave))
	},
}

func printParticipant(i icon.Icon, p remote.Participant, st mo.Option[remote.Status]) {
	fmt.Printf(
		"%s %s %s\n  %s\n",
		icon.Get(i),
		style.Bold(util.Capitalize(string(p.Role))),
		style.Faint(p.BaseURL),
		describeStatus(st),
	)
}

func describeStatus(st mo.Option[remote.Status]) string {
	status, ok := st.Get()
	if !ok {
		return style.Fg(color.Red)("unreachable")
	}

	line := fmt.Sprintf("%s at %.1fs", status.State, status.Elapsed)
	if status.Fullscreen {
		line += " (fullscreen)"
	}

	switch {
	case status.Playing():
		return style.Fg(color.Green)(line)
	case status.Paused():
		return style.Fg(color.Yellow)(line)
	default:
		return style.Faint(line)
	}
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

// newConsole builds the authenticated transport. A missing shared password
// is fatal before any command is issued.
func newConsole() *remote.Client {
	password, err := auth.Password()
	handleErr(err)
	return remote.NewClient(password)
}

// newController assembles the controller over the configured participants,
// transport, selection store and policy.
func newController() *controller.Controller {
	master, slave := remote.Participants()
	return controller.New(master, slave, newConsole(), selection.DefaultStore(), controller.PolicyFromConfig())
}

// runIntent dispatches one control intent and reports its single outcome.
func runIntent(in controller.Intent) {
	message, err := newController().Dispatch(in)
	handleErr(err)
	printOutcome(message)
}

func printOutcome(message string) {
	width, _, err := util.TerminalSize()
	if err != nil || width <= 0 {
		width = 80
	}

	fmt.Printf(
		"%s %s\n",
		style.Fg(color.Green)(icon.Get(icon.Success)),
		wrap.String(message, width-2),
	)
}

// mediaFlags registers the media path overrides shared by every command that
// may need to (re)load the selection.
func mediaFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("master", "m", "", "Media path for the master participant")
	cmd.Flags().StringP("slave", "s", "", "Media path for the slave participant")
}

func mediaIntent(cmd *cobra.Command, command controller.Command) controller.Intent {
	return controller.Intent{
		Command:    command,
		MasterFile: lo.Must(cmd.Flags().GetString("master")),
		SlaveFile:  lo.Must(cmd.Flags().GetString("slave")),
	}
}
