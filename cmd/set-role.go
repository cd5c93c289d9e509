package cmd

import (
	"errors"
	"fmt"

	"github.com/gigfinder/gigfinder/internal/database"
	"github.com/gigfinder/gigfinder/internal/engine"
	"github.com/spf13/cobra"
)

var setRoleCmdFlags struct {
	Username string
	Role     string
}

var setRoleCmd = &cobra.Command{
	Use:   "set-role",
	Short: "Change the role of a user",
	Long: `Change the role of a user to "user" or "admin".

Use this to promote the first administrator, who can then manage roles from the admin dashboard.
Logged in sessions of the user pick up the new role on their next request.`,
	Example: `gigfinder set-role --username alice --role admin`,
	RunE:    setRole,
}

func init() {
	setRoleCmd.Flags().StringVarP(&setRoleCmdFlags.Username, "username", "u", "", "Name of the user")
	setRoleCmd.Flags().StringVarP(&setRoleCmdFlags.Role, "role", "r", string(database.RoleAdmin), "New role (user or admin)")
	_ = setRoleCmd.MarkFlagRequired("username")

	rootCmd.AddCommand(setRoleCmd)
}

func setRole(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()

	db, err := database.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close() //nolint: errcheck

	eng, err := engine.New(cfg, db)
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	user, err := eng.SetUserRoleByName(cmd.Context(), setRoleCmdFlags.Username, setRoleCmdFlags.Role)
	if err != nil {
		var verr *engine.ValidationError
		switch {
		case errors.As(err, &verr):
			return fmt.Errorf("%s Use %q or %q", verr.Error(), database.RoleUser, database.RoleAdmin)
		case errors.Is(err, engine.ErrNotFound):
			return fmt.Errorf("user %q does not exist", setRoleCmdFlags.Username)
		}
		return err
	}

	fmt.Printf("User %s (ID %d) now has the %s role.\n", user.Username, user.ID, user.Role)
	return nil
}
