package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/user-secrets/cmd/app/commands"
	"github.com/allisson/user-secrets/internal/app"
	"github.com/allisson/user-secrets/internal/config"
)

func getDirectoryCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-user",
			Usage: "Register a new user",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "name",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "User display name",
				},
				&cli.StringFlag{
					Name:     "email",
					Aliases:  []string{"e"},
					Required: true,
					Usage:    "User email address",
				},
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "User password (omit to be prompted)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				userUseCase, err := container.UserUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateUser(
					ctx,
					userUseCase,
					container.Logger(),
					commands.DefaultIO(),
					cmd.String("name"),
					cmd.String("email"),
					cmd.String("password"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "create-org",
			Usage: "Create a new organization",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "name",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Organization name",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				orgUseCase, err := container.OrgUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateOrg(
					ctx,
					orgUseCase,
					container.Logger(),
					commands.DefaultIO(),
					cmd.String("name"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "add-member",
			Usage: "Add a user to an organization",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "org-id",
					Aliases:  []string{"o"},
					Required: true,
					Usage:    "Organization ID (UUID)",
				},
				&cli.StringFlag{
					Name:     "user-id",
					Aliases:  []string{"u"},
					Required: true,
					Usage:    "User ID (UUID)",
				},
				&cli.StringFlag{
					Name:    "role",
					Aliases: []string{"r"},
					Value:   "member",
					Usage:   "Membership role: 'admin' or 'member'",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				orgUseCase, err := container.OrgUseCase()
				if err != nil {
					return err
				}

				return commands.RunAddMember(
					ctx,
					orgUseCase,
					container.Logger(),
					commands.DefaultIO(),
					cmd.String("org-id"),
					cmd.String("user-id"),
					cmd.String("role"),
					cmd.String("format"),
				)
			},
		},
	}
}
