package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/fitforge/fitforge-cli/internal/auth"
	"github.com/fitforge/fitforge-cli/internal/trainingapi"
)

// readPassword reads a single line from r, trimming the line ending.
func readPassword(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	pw := strings.TrimRight(line, "\r\n")
	if pw == "" {
		return "", fmt.Errorf("empty password on stdin")
	}
	return pw, nil
}

// describeAuthError turns an auth failure into a user-facing message.
func describeAuthError(err error) error {
	var apiErr *trainingapi.APIError
	if !errors.As(err, &apiErr) {
		return err
	}
	switch apiErr.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("invalid email or password")
	case http.StatusConflict:
		return fmt.Errorf("an account with this email already exists")
	case trainingapi.StatusNetwork:
		return fmt.Errorf("could not reach the server: %w", err)
	default:
		return err
	}
}

func newLoginCmd() *cobra.Command {
	var (
		email         string
		passwordStdin bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to fitforge",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := requireDeps()
			if err != nil {
				return err
			}

			var password string
			if passwordStdin {
				if password, err = readPassword(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			if email == "" || password == "" {
				if d.Headless.IsHeadless() {
					return fmt.Errorf("--email and --password-stdin are required in non-interactive mode")
				}
				var fields []huh.Field
				if email == "" {
					fields = append(fields, huh.NewInput().
						Title("Email").
						Value(&email).
						Validate(auth.ValidateEmail))
				}
				if password == "" {
					fields = append(fields, huh.NewInput().
						Title("Password").
						EchoMode(huh.EchoModePassword).
						Value(&password))
				}
				if err := huh.NewForm(huh.NewGroup(fields...)).
					WithTheme(d.Theme.Huh()).
					RunWithContext(cmd.Context()); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						return nil
					}
					return err
				}
			}

			creds, err := d.Auth.Login(cmd.Context(), email, password)
			if err != nil {
				return describeAuthError(err)
			}
			if err := d.Creds.Save(creds); err != nil {
				return fmt.Errorf("save credentials: %w", err)
			}
			d.logger().Debug("signed in", "user_id", creds.UserID)

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderSuccessCard("Signed in",
				renderKeyValueLines([]kvPair{{"Email", creds.Email}})))
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read the password from stdin")
	return cmd
}

func newSignupCmd() *cobra.Command {
	var (
		req           auth.RegisterRequest
		passwordStdin bool
	)

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a fitforge account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := requireDeps()
			if err != nil {
				return err
			}

			if passwordStdin {
				if req.Password, err = readPassword(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			complete := req.FirstName != "" && req.LastName != "" && req.Email != "" && req.Password != ""
			if !complete {
				if d.Headless.IsHeadless() {
					return fmt.Errorf("--first-name, --last-name, --email and --password-stdin are required in non-interactive mode")
				}
				if err := signupForm(&req).
					WithTheme(d.Theme.Huh()).
					RunWithContext(cmd.Context()); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						return nil
					}
					return err
				}
			}

			creds, err := d.Auth.Register(cmd.Context(), req)
			if err != nil {
				return describeAuthError(err)
			}
			if err := d.Creds.Save(creds); err != nil {
				return fmt.Errorf("save credentials: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderSuccessCard("Account created",
				renderKeyValueLines([]kvPair{
					{"Name", req.FirstName + " " + req.LastName},
					{"Email", creds.Email},
				}),
				"Next: run 'fitforge training setup'."))
			return nil
		},
	}
	cmd.Flags().StringVar(&req.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&req.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&req.Email, "email", "", "account email")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read the password from stdin")
	return cmd
}

// signupForm builds the interactive sign-up form. The password input shows
// its strength as the user types.
func signupForm(req *auth.RegisterRequest) *huh.Form {
	required := func(label string) func(string) error {
		return func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("%s is required", label)
			}
			return nil
		}
	}

	var confirm string
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("First name").Value(&req.FirstName).Validate(required("first name")),
			huh.NewInput().Title("Last name").Value(&req.LastName).Validate(required("last name")),
			huh.NewInput().Title("Email").Value(&req.Email).Validate(auth.ValidateEmail),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&req.Password).
				DescriptionFunc(func() string {
					if req.Password == "" {
						return "At least 8 characters, mixing case, digits and symbols"
					}
					return "Strength: " + auth.PasswordStrength(req.Password).Label()
				}, &req.Password).
				Validate(func(s string) error {
					if !auth.PasswordStrength(s).Acceptable() {
						return auth.ErrWeakPassword
					}
					return nil
				}),
			huh.NewInput().
				Title("Confirm password").
				EchoMode(huh.EchoModePassword).
				Value(&confirm).
				Validate(func(s string) error {
					if s != req.Password {
						return fmt.Errorf("passwords do not match")
					}
					return nil
				}),
		),
	)
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and remove stored credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := requireDeps()
			if err != nil {
				return err
			}
			if err := d.Creds.Delete(); err != nil {
				return fmt.Errorf("remove credentials: %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderSuccessCard("Signed out"))
			return nil
		},
	}
}
