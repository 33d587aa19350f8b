package auth

import (
	"fmt"

	"github.com/bornholm/taskboard/internal/command/common"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagName     = "name"
	flagEmail    = "email"
	flagPassword = "password"
)

func SignupCommand() *cli.Command {
	return &cli.Command{
		Name:  "signup",
		Usage: "Create an account and print the authentication token",
		Flags: common.WithCommonFlags(
			&cli.StringFlag{
				Name:     flagName,
				Aliases:  []string{"n"},
				Usage:    "Display name of the account",
				Required: true,
			},
			&cli.StringFlag{
				Name:     flagEmail,
				Aliases:  []string{"e"},
				Usage:    "Email of the account",
				Required: true,
			},
			&cli.StringFlag{
				Name:     flagPassword,
				Aliases:  []string{"p"},
				Usage:    "Password of the account",
				Required: true,
				EnvVars:  []string{"TASKBOARD_PASSWORD"},
			},
		),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			taskboardClient, err := common.GetTaskboardClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			res, err := taskboardClient.Signup(ctx, cCtx.String(flagName), cCtx.String(flagEmail), cCtx.String(flagPassword))
			if err != nil {
				return errors.Wrap(err, "could not sign up")
			}

			fmt.Println(res.Token)

			return nil
		},
	}
}

func LoginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Exchange credentials for an authentication token",
		Flags: common.WithCommonFlags(
			&cli.StringFlag{
				Name:     flagEmail,
				Aliases:  []string{"e"},
				Usage:    "Email of the account",
				Required: true,
			},
			&cli.StringFlag{
				Name:     flagPassword,
				Aliases:  []string{"p"},
				Usage:    "Password of the account",
				Required: true,
				EnvVars:  []string{"TASKBOARD_PASSWORD"},
			},
		),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			taskboardClient, err := common.GetTaskboardClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			res, err := taskboardClient.Login(ctx, cCtx.String(flagEmail), cCtx.String(flagPassword))
			if err != nil {
				return errors.Wrap(err, "could not log in")
			}

			fmt.Println(res.Token)

			return nil
		},
	}
}
