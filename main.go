// shooter is a side-scrolling tile shooter.
//
// Usage:
//
//	shooter                  - Play from the first level
//	shooter --level 2        - Start on a given level
//	shooter levels           - List embedded levels
//
// Flags:
//
//	--debug       - Debug logging and collision overlay
//	--watch       - Hot reload prefabs and AI scripts from ./prefabs
//	--fullscreen  - Start fullscreen
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/shooter/common"
	"github.com/milk9111/shooter/levels"
)

var (
	flagLevel      int
	flagDebug      bool
	flagWatch      bool
	flagFullscreen bool
	flagSeed       uint64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "shooter",
	Short:        "Side-scrolling tile shooter",
	SilenceUsage: true,
	RunE:         runPlay,
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List embedded levels",
	RunE:  runLevels,
}

func init() {
	rootCmd.Flags().IntVar(&flagLevel, "level", -1, "level index to start on (default from game.yaml)")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "reload prefabs and scripts when they change on disk")
	rootCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "start fullscreen")
	rootCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "RNG seed for enemy AI (0 = random)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging and overlay")

	rootCmd.AddCommand(levelsCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	if flagDebug {
		log.SetLevel(log.DebugLevel)
	}
	if flagLevel >= common.MaxLevels {
		return fmt.Errorf("level %d out of range, have %d levels", flagLevel, common.MaxLevels)
	}

	game, err := NewGame(GameOptions{
		Level: flagLevel,
		Debug: flagDebug,
		Watch: flagWatch,
		Seed:  flagSeed,
	})
	if err != nil {
		return err
	}
	defer game.Close()

	ebiten.SetWindowSize(common.ScreenWidth, common.ScreenHeight)
	ebiten.SetWindowTitle("Shooter")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(flagFullscreen)
	ebiten.SetTPS(common.FPS)

	if err := ebiten.RunGame(game); err != nil && err != errQuit {
		return err
	}
	return nil
}

func runLevels(cmd *cobra.Command, args []string) error {
	names := levels.Names()
	if len(names) == 0 {
		fmt.Println("No levels embedded.")
		return nil
	}

	fmt.Printf("  %-8s  %-10s  %s\n", "File", "Name", "Width")
	fmt.Printf("  %-8s  %-10s  %s\n", "----", "----", "-----")
	for _, name := range names {
		lvl, err := levels.LoadLevelFromFS(name)
		if err != nil {
			return err
		}
		fmt.Printf("  %-8s  %-10s  %d\n", name, lvl.Name, lvl.Width())
	}
	return nil
}
