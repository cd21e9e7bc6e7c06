package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"hrdesk/internal/domain/auth"
)

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for local testing",
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, _ := cmd.Flags().GetString("secret")
			user, _ := cmd.Flags().GetString("user")
			role, _ := cmd.Flags().GetString("role")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			if secret == "" {
				return fmt.Errorf("--secret is required (must match the server's JWT_SECRET)")
			}
			switch role {
			case auth.RoleEmployee, auth.RoleManager, auth.RoleHR:
			default:
				return fmt.Errorf("unknown role %q (employee, manager, hr)", role)
			}

			token, err := auth.GenerateToken(secret, auth.Claims{UserID: user, RoleName: role}, ttl)
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}

	cmd.Flags().String("secret", "", "signing secret")
	cmd.Flags().String("user", "local-admin", "user id claim")
	cmd.Flags().String("role", auth.RoleHR, "role claim: employee, manager, hr")
	cmd.Flags().Duration("ttl", 24*time.Hour, "token lifetime")
	return cmd
}
