package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/taskbook/internal/config"
	"github.com/zjrosen/taskbook/internal/presentation"
	"github.com/zjrosen/taskbook/internal/registry"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List users",
	RunE:  runUsers,
}

func init() {
	usersCmd.Flags().Bool("active", false, "only list active users")
	usersCmd.Flags().String("search", "", "filter by case-insensitive name substring")

	rootCmd.AddCommand(usersCmd)
}

func runUsers(cmd *cobra.Command, args []string) error {
	d, err := setup(cmd)
	if err != nil {
		return err
	}

	var users []registry.User
	switch {
	case mustString(cmd, "search") != "":
		users = d.Users.SearchByName(mustString(cmd, "search"))
	case mustBool(cmd, "active"):
		users = d.Users.ListActive()
	default:
		users = d.Users.List()
	}

	dtos := make([]presentation.UserDTO, 0, len(users))
	for _, user := range users {
		dtos = append(dtos, presentation.NewUserDTO(user))
	}

	if cfg.Output == config.OutputJSON {
		return presentation.NewFormatter(cmd.OutOrStdout()).FormatUsers(dtos)
	}
	fmt.Fprint(cmd.OutOrStdout(), presentation.RenderUsers(dtos))
	return nil
}

func mustString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func mustBool(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}
