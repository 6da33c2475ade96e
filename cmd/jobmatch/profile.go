package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobmatch-cli/internal/profile"
	"github.com/jonathan/jobmatch-cli/internal/types"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Edit your profile, password, and preferences",
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update your personal information",
	RunE:  runProfileUpdate,
}

var profilePasswordCmd = &cobra.Command{
	Use:   "password",
	Short: "Change your password",
	RunE:  runProfilePassword,
}

var profilePrefsCmd = &cobra.Command{
	Use:   "preferences",
	Short: "Update your job-search preferences",
	RunE:  runProfilePrefs,
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete-account",
	Short: "Permanently delete your account",
	Long:  "Permanently delete the account and all its data. Requires --confirm DELETE; there is no undo.",
	RunE:  runProfileDelete,
}

var (
	profileName     string
	profileEmail    string
	profilePhone    string
	profileLocation string
	profileBio      string

	currentPassword string
	newPassword     string
	confirmPassword string

	prefJobAlerts  bool
	prefRemoteOnly bool
	prefSalary     string
	prefJobTypes   []string

	deleteConfirm string
)

func init() {
	profileUpdateCmd.Flags().StringVar(&profileName, "name", "", "Full name")
	profileUpdateCmd.Flags().StringVar(&profileEmail, "email", "", "Email address")
	profileUpdateCmd.Flags().StringVar(&profilePhone, "phone", "", "Phone number")
	profileUpdateCmd.Flags().StringVar(&profileLocation, "location", "", "Location")
	profileUpdateCmd.Flags().StringVar(&profileBio, "bio", "", "Short bio")

	profilePasswordCmd.Flags().StringVar(&currentPassword, "current", "", "Current password")
	profilePasswordCmd.Flags().StringVar(&newPassword, "new", "", "New password (min 6 characters)")
	profilePasswordCmd.Flags().StringVar(&confirmPassword, "confirm", "", "New password again")
	profilePasswordCmd.MarkFlagRequired("current")
	profilePasswordCmd.MarkFlagRequired("new")
	profilePasswordCmd.MarkFlagRequired("confirm")

	profilePrefsCmd.Flags().BoolVar(&prefJobAlerts, "job-alerts", false, "Receive job alert emails")
	profilePrefsCmd.Flags().BoolVar(&prefRemoteOnly, "remote-only", false, "Only match remote jobs")
	profilePrefsCmd.Flags().StringVar(&prefSalary, "salary", "", "Desired salary range")
	profilePrefsCmd.Flags().StringSliceVar(&prefJobTypes, "job-types", nil, "Desired job types, e.g. full-time,contract")

	profileDeleteCmd.Flags().StringVar(&deleteConfirm, "confirm", "", "Type DELETE to confirm")
	profileDeleteCmd.MarkFlagRequired("confirm")

	profileCmd.AddCommand(profileUpdateCmd)
	profileCmd.AddCommand(profilePasswordCmd)
	profileCmd.AddCommand(profilePrefsCmd)
	profileCmd.AddCommand(profileDeleteCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileUpdate(cmd *cobra.Command, args []string) error {
	a, err := requireAuth(cmd, "profile update")
	if err != nil {
		return err
	}

	// Start from the current identity so unset flags keep their values.
	id := a.store.Identity()
	req := &types.UpdateProfileRequest{
		Name:     id.Name,
		Email:    id.Email,
		Phone:    id.Phone,
		Location: id.Location,
		Bio:      id.Bio,
	}
	if cmd.Flags().Changed("name") {
		req.Name = profileName
	}
	if cmd.Flags().Changed("email") {
		req.Email = profileEmail
	}
	if cmd.Flags().Changed("phone") {
		req.Phone = profilePhone
	}
	if cmd.Flags().Changed("location") {
		req.Location = profileLocation
	}
	if cmd.Flags().Changed("bio") {
		req.Bio = profileBio
	}

	ctrl := profile.NewController(a.client)
	if err := ctrl.UpdatePersonal(cmd.Context(), req); err != nil {
		return err
	}
	if err := a.store.LoadIdentity(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, "Profile updated")
	return nil
}

func runProfilePassword(cmd *cobra.Command, args []string) error {
	a, err := requireAuth(cmd, "profile password")
	if err != nil {
		return err
	}

	ctrl := profile.NewController(a.client)
	if err := ctrl.UpdatePassword(cmd.Context(), currentPassword, newPassword, confirmPassword); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, "Password changed")
	return nil
}

func runProfilePrefs(cmd *cobra.Command, args []string) error {
	a, err := requireAuth(cmd, "profile preferences")
	if err != nil {
		return err
	}

	// Preferences are replaced wholesale: start from what the identity has
	// and overlay only the flags the caller set.
	prefs := a.store.Identity().Preferences
	if cmd.Flags().Changed("job-alerts") {
		prefs.JobAlerts = prefJobAlerts
	}
	if cmd.Flags().Changed("remote-only") {
		prefs.RemoteOnly = prefRemoteOnly
	}
	if cmd.Flags().Changed("salary") {
		prefs.Salary = prefSalary
	}
	if cmd.Flags().Changed("job-types") {
		prefs.JobTypes = prefJobTypes
	}

	ctrl := profile.NewController(a.client)
	if err := ctrl.UpdatePreferences(cmd.Context(), &prefs); err != nil {
		return err
	}
	if err := a.store.LoadIdentity(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, "Preferences updated")
	return nil
}

func runProfileDelete(cmd *cobra.Command, args []string) error {
	a, err := requireAuth(cmd, "profile delete-account")
	if err != nil {
		return err
	}

	ctrl := profile.NewController(a.client)
	if err := ctrl.DeleteAccount(cmd.Context(), strings.TrimSpace(deleteConfirm)); err != nil {
		return err
	}
	if err := a.store.Logout(); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, "Account deleted")
	return nil
}
