package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/redmonkez12/plan-a-meal/internal/auth"
	"github.com/redmonkez12/plan-a-meal/internal/httputil"
	"github.com/redmonkez12/plan-a-meal/internal/logging"
	"github.com/redmonkez12/plan-a-meal/internal/user"
)

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print the argon2id hash of a password",
		Long:  "Print the argon2id hash of a password in the format stored in the users table.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := auth.NewArgon2Hasher(auth.DefaultArgon2Params).Hash(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func newUserCmd() *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	userCmd.AddCommand(newCreateAdminCmd(), newListUsersCmd())
	return userCmd
}

func newCreateAdminCmd() *cobra.Command {
	var in user.CreateInput
	var firstName, lastName string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create a user with admin privileges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			if firstName != "" {
				in.FirstName = &firstName
			}
			if lastName != "" {
				in.LastName = &lastName
			}
			in.IsAdmin = true

			svc := user.NewService(
				user.NewRepository(db, cfg.Database.UserTableName),
				auth.NewArgon2Hasher(auth.DefaultArgon2Params),
				logging.Discard(),
			)

			created, err := svc.Create(cmd.Context(), in)
			if err != nil {
				var apiErr *httputil.Error
				if errors.As(err, &apiErr) {
					return errors.New(apiErr.Detail)
				}
				return fmt.Errorf("create admin: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Admin %s created with id %s\n", created.Username, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Username, "username", "", "username (required)")
	cmd.Flags().StringVar(&in.Email, "email", "", "email address (required)")
	cmd.Flags().StringVar(&in.Password, "password", "", "password (required)")
	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newListUsersCmd() *cobra.Command {
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			users, err := user.NewRepository(db, cfg.Database.UserTableName).List(cmd.Context(), limit, offset)
			if err != nil {
				return err
			}

			rows := make([][]any, 0, len(users))
			for _, u := range users {
				rows = append(rows, []any{u.ID, u.Username, u.Email, orDash(u.FirstName), orDash(u.LastName), u.IsAdmin})
			}
			renderTable(cmd.OutOrStdout(), []string{"UUID", "Username", "Email", "First name", "Last name", "Admin"}, rows)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "maximum number of users")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of users to skip")
	return cmd
}
