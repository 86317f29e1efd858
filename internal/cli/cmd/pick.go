package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/schemer/internal/cli/model"
	"github.com/bnema/schemer/internal/domain/entity"
	"github.com/bnema/schemer/internal/infrastructure/config"
	"github.com/bnema/schemer/internal/logging"
)

var pickWatch bool

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick a color scheme interactively",
	Long: `Open an interactive list. The highlighted entry is selected with space or enter
and stored immediately.

With --watch, edits to config.toml are applied while the picker is open.`,
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)
	pickCmd.Flags().BoolVarP(&pickWatch, "watch", "w", false, "follow config.toml changes")
}

func runPick(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	log := logging.FromContext(a.Ctx())

	picker := model.NewPickerModel(model.PickerConfig{
		Model:      a.Model,
		Translator: a.Translator,
		Effective:  a.Resolver.Current(),
		OnFallback: a.Controller.ApplyFallback,
	})
	p := tea.NewProgram(picker)

	// Callbacks fire inside Update; Send must not block the event loop.
	unsubscribe := a.Resolver.OnChange(func(e entity.EffectiveScheme) {
		go p.Send(model.EffectiveMsg{Effective: e})
	})
	defer unsubscribe()
	a.Controller.SetOnSaved(func(e entity.EffectiveScheme) {
		go p.Send(model.EffectiveMsg{Effective: e})
	})
	a.Controller.SetOnError(func(err error) {
		go p.Send(model.SaveErrMsg{Err: err})
	})

	if pickWatch {
		a.ConfigManager.OnConfigChange(func(cfg *config.Config) {
			scheme, parseErr := entity.ParseColorScheme(cfg.Appearance.ColorScheme)
			if parseErr != nil {
				log.Warn().Err(parseErr).Msg("ignoring config change")
				return
			}
			p.Send(model.FallbackMsg{Scheme: scheme})
		})
		if err := a.ConfigManager.Watch(); err != nil {
			return fmt.Errorf("watch config: %w", err)
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run picker: %w", err)
	}
	return nil
}
