package main

import (
	"fmt"
	"os"

	"github.com/jekabolt/grbpwr-tickets/config"
	"github.com/jekabolt/grbpwr-tickets/internal/auth/jwt"
	"github.com/spf13/cobra"
)

func tokenCmd() *cobra.Command {
	flags := &sessionFlags{}
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("cannot load a config %v", err.Error())
			}
			session, err := flags.session(cfg)
			if err != nil {
				return err
			}
			auth, err := jwt.New(&cfg.Auth)
			if err != nil {
				return err
			}
			token, err := auth.Issue(session)
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, token)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
