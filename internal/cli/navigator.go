package cli

import (
	"fmt"
	"io"

	"github.com/fitforge/fitforge-cli/internal/auth"
	"github.com/fitforge/fitforge-cli/internal/form"
	"github.com/fitforge/fitforge-cli/pkg/models"
)

// terminalNavigator maps form routes to terminal output.
// The dashboard prints the saved profile. The login route clears the
// stale session and tells the user how to sign in again.
type terminalNavigator struct {
	out    io.Writer
	creds  auth.CredentialStore
	locale string
	saved  func() *models.TrainingInfo
}

// Compile-time interface check.
var _ form.Navigator = (*terminalNavigator)(nil)

// Navigate implements form.Navigator.
func (n *terminalNavigator) Navigate(route string) {
	switch route {
	case form.RouteDashboard:
		var details []string
		if n.saved != nil {
			if info := n.saved(); info != nil {
				details = append(details, renderKeyValueLines(profilePairs(info, n.locale)))
			}
		}
		_, _ = fmt.Fprintln(n.out, renderSuccessCard("Training profile saved", details...))
	case form.RouteLogin:
		if n.creds != nil {
			_ = n.creds.Delete()
		}
		_, _ = fmt.Fprintln(n.out, renderInfoCard("Signed out", "Run 'fitforge login' to sign in again."))
	}
}
