package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with email and password",
	Long:  "Authenticate against the jobmatch API and persist the session credential for subsequent commands.",
	RunE:  runLogin,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long:  "Create a new jobmatch account and sign in with it in one step.",
	RunE:  runRegister,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and discard the stored session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in identity",
	RunE:  runWhoami,
}

var (
	authEmail    string
	authPassword string
	authName     string
)

func init() {
	loginCmd.Flags().StringVarP(&authEmail, "email", "e", "", "Account email address")
	loginCmd.Flags().StringVarP(&authPassword, "password", "p", "", "Account password (prompted when omitted)")

	registerCmd.Flags().StringVarP(&authName, "name", "n", "", "Full name")
	registerCmd.Flags().StringVarP(&authEmail, "email", "e", "", "Account email address")
	registerCmd.Flags().StringVarP(&authPassword, "password", "p", "", "Account password (prompted when omitted)")

	loginCmd.MarkFlagRequired("email")
	registerCmd.MarkFlagRequired("name")
	registerCmd.MarkFlagRequired("email")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

// promptPassword reads the password from stdin when it was not passed by flag.
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	password := authPassword
	if password == "" {
		if password, err = promptPassword("Password: "); err != nil {
			return err
		}
	}

	returnTo := a.store.ReturnTo()

	if err := a.store.Login(cmd.Context(), authEmail, password); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Signed in as %s\n", authEmail)
	if returnTo != "" {
		fmt.Fprintf(os.Stdout, "You can now run 'jobmatch %s'\n", returnTo)
	}
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	password := authPassword
	if password == "" {
		if password, err = promptPassword("Password (min 6 characters): "); err != nil {
			return err
		}
	}

	if err := a.store.Register(cmd.Context(), authName, authEmail, password); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Account created; signed in as %s\n", authEmail)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	if err := a.store.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, "Signed out")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	a.guard.Resolve(cmd.Context())
	a.printer.PrintIdentity(a.store.Identity())
	return nil
}
