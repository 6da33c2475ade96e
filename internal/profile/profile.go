// Package profile implements the profile editor: personal information,
// password changes, job-search preferences, and account deletion. All input
// validation happens client-side before any network call.
package profile

import (
	"context"
	"fmt"

	"github.com/jonathan/jobmatch-cli/internal/api"
	"github.com/jonathan/jobmatch-cli/internal/types"
)

// DeleteConfirmation is the exact phrase required to confirm account deletion.
const DeleteConfirmation = "DELETE"

// Controller performs profile mutations for the current identity.
type Controller struct {
	client *api.Client
}

// NewController creates a profile controller.
func NewController(client *api.Client) *Controller {
	return &Controller{client: client}
}

// UpdatePersonal replaces the identity's personal information. Name and a
// well-formed email are required.
func (c *Controller) UpdatePersonal(ctx context.Context, req *types.UpdateProfileRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid profile input: %w", err)
	}
	return c.client.UpdateProfile(ctx, req)
}

// UpdatePassword changes the password. The current password must be supplied,
// the new password must be at least six characters, and the confirmation must
// match; the confirmation itself is never transmitted.
func (c *Controller) UpdatePassword(ctx context.Context, current, newPassword, confirm string) error {
	req := &types.UpdatePasswordRequest{CurrentPassword: current, NewPassword: newPassword}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid password input: %w", err)
	}
	if newPassword != confirm {
		return fmt.Errorf("passwords do not match")
	}
	return c.client.UpdatePassword(ctx, req)
}

// UpdatePreferences replaces the job-search preferences wholesale.
func (c *Controller) UpdatePreferences(ctx context.Context, prefs *types.Preferences) error {
	return c.client.UpdatePreferences(ctx, prefs)
}

// DeleteAccount permanently removes the account. The caller must pass the
// exact DeleteConfirmation phrase; anything else aborts before the network
// call.
func (c *Controller) DeleteAccount(ctx context.Context, confirmation string) error {
	if confirmation != DeleteConfirmation {
		return fmt.Errorf("account deletion cancelled: confirmation phrase did not match")
	}
	return c.client.DeleteAccount(ctx)
}
