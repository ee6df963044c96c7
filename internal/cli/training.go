package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/fitforge/fitforge-cli/internal/auth"
	"github.com/fitforge/fitforge-cli/internal/form"
	"github.com/fitforge/fitforge-cli/internal/trainingapi"
	"github.com/fitforge/fitforge-cli/internal/ui"
	"github.com/fitforge/fitforge-cli/pkg/models"
)

func newTrainingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "training",
		Short: "Manage your training profile",
		Long:  "Create, edit, show or delete the training profile used to build your programs.",
	}
	cmd.AddCommand(
		newTrainingSetupCmd(),
		newTrainingEditCmd(),
		newTrainingShowCmd(),
		newTrainingDeleteCmd(),
	)
	return cmd
}

// requireLogin fails early when no session is stored.
func requireLogin(d *Dependencies) error {
	if _, err := d.Creds.Load(); err != nil {
		if errors.Is(err, auth.ErrNotLoggedIn) {
			return fmt.Errorf("not signed in: run 'fitforge login' first")
		}
		return err
	}
	return nil
}

func newTrainingSetupCmd() *cobra.Command {
	var answersPath string

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Create or update your training profile",
		Long: `Walk through the four-step training profile wizard.

If a profile already exists it is loaded and updated; otherwise a new one is
created. Without a terminal, or with --answers, the wizard reads its answers
from a YAML file keyed by field name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := requireDeps()
			if err != nil {
				return err
			}
			if err := requireLogin(d); err != nil {
				return err
			}
			return runWizard(cmd, d, answersPath, func(nav form.Navigator) *form.Controller {
				return form.NewController(d.Training, nav, form.WithLogger(d.logger()))
			})
		},
	}
	cmd.Flags().StringVar(&answersPath, "answers", "", "YAML file with wizard answers (runs headless)")
	return cmd
}

func newTrainingEditCmd() *cobra.Command {
	var answersPath string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit your existing training profile",
		Long: `Load your training profile and edit it in the wizard.

Every field starts with its stored value and is checked right away, so values
the platform no longer accepts are flagged on the first step. The profile is
always updated, never created. With --answers only the listed fields change.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := requireDeps()
			if err != nil {
				return err
			}
			if err := requireLogin(d); err != nil {
				return err
			}

			nav := &terminalNavigator{out: cmd.OutOrStdout(), creds: d.Creds, locale: d.locale()}
			info, err := d.Training.Get(cmd.Context())
			if err != nil {
				msg := form.HandleError(err, nav)
				if trainingapi.IsNotFound(err) {
					msg += ". Run 'fitforge training setup' to create one."
				}
				return fmt.Errorf("%s: %w", msg, err)
			}

			return runWizard(cmd, d, answersPath, func(nav form.Navigator) *form.Controller {
				return form.NewEditController(d.Training, nav, *info, form.WithLogger(d.logger()))
			})
		},
	}
	cmd.Flags().StringVar(&answersPath, "answers", "", "YAML file with wizard answers (runs headless)")
	return cmd
}

// runWizard runs the training wizard on the controller built by newCtrl.
// A non-empty answersPath forces headless mode with those answers.
func runWizard(cmd *cobra.Command, d *Dependencies, answersPath string, newCtrl func(form.Navigator) *form.Controller) error {
	hm := d.Headless
	if answersPath != "" {
		answers, err := ui.LoadAnswers(answersPath)
		if err != nil {
			return err
		}
		hm.SetAnswers(answers)
		hm.ForceHeadless(true)
	}

	out := cmd.OutOrStdout()
	nav := &terminalNavigator{out: out, creds: d.Creds, locale: d.locale()}
	ctrl := newCtrl(nav)
	nav.saved = ctrl.Saved

	wz := ui.NewWizard(ctrl, d.Theme, hm,
		ui.WithOutput(out),
		ui.WithLocale(d.locale()),
		ui.WithLogger(d.logger()),
	)
	err := wz.Run(cmd.Context())
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ui.ErrCancelled), errors.Is(err, context.Canceled):
		_, _ = fmt.Fprintln(out, "Cancelled. Nothing was saved.")
		return nil
	case ctrl.Error() != "":
		return fmt.Errorf("%s: %w", ctrl.Error(), err)
	default:
		return err
	}
}

func newTrainingShowCmd() *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a training profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := requireDeps()
			if err != nil {
				return err
			}
			if err := requireLogin(d); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			nav := &terminalNavigator{out: out, creds: d.Creds, locale: d.locale()}

			var info *models.TrainingInfo
			if userID > 0 {
				info, err = d.Training.GetByUser(cmd.Context(), userID)
			} else {
				info, err = d.Training.Get(cmd.Context())
			}
			if err != nil {
				msg := form.HandleError(err, nav)
				if trainingapi.IsNotFound(err) && userID == 0 {
					msg += ". Run 'fitforge training setup' to create one."
				}
				return fmt.Errorf("%s: %w", msg, err)
			}

			rendered, err := renderMarkdown(profileMarkdown(info, d.locale()), d.Theme.NoColor)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(out, rendered)
			return nil
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 0, "show the profile of another user by ID")
	return cmd
}

func newTrainingDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete your training profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := requireDeps()
			if err != nil {
				return err
			}
			if err := requireLogin(d); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !yes {
				if d.Headless.IsHeadless() {
					return fmt.Errorf("refusing to delete without --yes in non-interactive mode")
				}
				confirmed := false
				err := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().
						Title("Delete your training profile?").
						Description("Your programs will no longer be personalized.").
						Affirmative("Delete").
						Negative("Keep").
						Value(&confirmed),
				)).WithTheme(d.Theme.Huh()).RunWithContext(cmd.Context())
				if err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						confirmed = false
					} else {
						return fmt.Errorf("confirm: %w", err)
					}
				}
				if !confirmed {
					_, _ = fmt.Fprintln(out, "Kept your training profile.")
					return nil
				}
			}

			nav := &terminalNavigator{out: out, creds: d.Creds, locale: d.locale()}
			if err := d.Training.Delete(cmd.Context()); err != nil {
				return fmt.Errorf("%s: %w", form.HandleError(err, nav), err)
			}
			_, _ = fmt.Fprintln(out, renderSuccessCard("Training profile deleted"))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without confirmation")
	return cmd
}
