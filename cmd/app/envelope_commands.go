package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/user-secrets/cmd/app/commands"
)

// Envelope commands run entirely on the client side. They never touch the
// database or the server; the key material they print must be stored by the
// caller and is unrecoverable once lost.
func getEnvelopeCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "seal-secret",
			Usage: "Seal a plaintext value into an envelope with a fresh key",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "value",
					Aliases: []string{"v"},
					Usage:   "Plaintext value (omit to read from stdin)",
				},
				&cli.StringFlag{
					Name:    "algorithm",
					Aliases: []string{"alg"},
					Value:   "aes-gcm",
					Usage:   "Encryption algorithm to use (aes-gcm or chacha20-poly1305)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunSealSecret(
					commands.DefaultIO(),
					cmd.String("value"),
					cmd.String("algorithm"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "open-secret",
			Usage: "Decrypt an envelope with the stored key",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "key",
					Aliases:  []string{"k"},
					Required: true,
					Usage:    "Base64-encoded secret key",
				},
				&cli.StringFlag{
					Name:     "encrypted-value",
					Aliases:  []string{"c"},
					Required: true,
					Usage:    "Base64-encoded ciphertext",
				},
				&cli.StringFlag{
					Name:     "iv",
					Required: true,
					Usage:    "Base64-encoded nonce",
				},
				&cli.StringFlag{
					Name:     "tag",
					Required: true,
					Usage:    "Base64-encoded authentication tag",
				},
				&cli.StringFlag{
					Name:    "algorithm",
					Aliases: []string{"alg"},
					Value:   "aes-gcm",
					Usage:   "Encryption algorithm used to seal (aes-gcm or chacha20-poly1305)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunOpenSecret(
					commands.DefaultIO(),
					cmd.String("key"),
					cmd.String("encrypted-value"),
					cmd.String("iv"),
					cmd.String("tag"),
					cmd.String("algorithm"),
				)
			},
		},
		{
			Name:  "hash-key",
			Usage: "Compute the verification hash for a secret key",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "key",
					Aliases:  []string{"k"},
					Required: true,
					Usage:    "Base64-encoded secret key",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunHashKey(commands.DefaultIO(), cmd.String("key"))
			},
		},
	}
}
