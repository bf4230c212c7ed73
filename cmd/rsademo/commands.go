package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/colbycyphersociety/rsademo/internal/keyfile"
	"github.com/colbycyphersociety/rsademo/pkg/rsademo"
	"github.com/colbycyphersociety/rsademo/pkg/rsademo/decimal"
	"github.com/colbycyphersociety/rsademo/pkg/rsademo/keypair"
	"github.com/colbycyphersociety/rsademo/pkg/rsademo/prime"
	"github.com/colbycyphersociety/rsademo/pkg/rsademo/seed"
)

func (a *app) keygenCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Derive a key pair from two seeds.",
		Long: `Derive a key pair from two 32-byte seeds given as 64 hex digits each.
The seeds must differ. The key file is YAML with decimal e, d and n; it is
written to --out or to stdout.`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.bind(cmd, map[string]string{"seed.p": "seed-p", "seed.q": "seed-q"})
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			sp, err := seedFromConfig(a.v.GetString("seed.p"), "seed-p")
			if err != nil {
				return err
			}
			sq, err := seedFromConfig(a.v.GetString("seed.q"), "seed-q")
			if err != nil {
				return err
			}

			cfg := rsademo.Config{Logger: a.logger}
			kp, err := cfg.GenerateKeypair(cmd.Context(), sp.Bytes(), sq.Bytes())
			if err != nil {
				return err
			}
			a.logger.Info(cmd.Context(), "key pair generated", "modulus_bits", kp.N().BitLen())

			if out != "" {
				return keyfile.Save(out, kp)
			}
			data, err := keyfile.Marshal(kp)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().String("seed-p", "", "hex seed for the first prime and the exponent search")
	cmd.Flags().String("seed-q", "", "hex seed for the second prime")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the key file here instead of stdout")
	return cmd
}

func (a *app) identityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "identity",
		Short: "Print the public identity (e, n) of a key file.",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.bind(cmd, map[string]string{"key.file": "key"})
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			kp, err := a.loadKey()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rsademo.PublicIdentity(kp))
			return err
		},
	}
	cmd.Flags().String("key", "", "key file produced by keygen")
	return cmd
}

func (a *app) encryptCmd() *cobra.Command {
	var message, e, n string
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a message to a public identity.",
		Long: `Encrypt a message byte by byte. The public identity comes from --e and
--n, or from --key when they are not given. The output keeps its leading
comma.`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.bind(cmd, map[string]string{"key.file": "key"})
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if e == "" || n == "" {
				if e != "" || n != "" {
					return errors.New("--e and --n must be given together")
				}
				kp, err := a.loadKey()
				if err != nil {
					return err
				}
				e, n = decimal.Format(kp.E()), decimal.Format(kp.N())
			}

			ct, err := rsademo.Encrypt([]byte(message), e, n)
			if err != nil {
				return err
			}
			a.logger.Debug(cmd.Context(), "message encrypted", "bytes", len(message))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), ct)
			return err
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "plaintext to encrypt")
	cmd.Flags().StringVar(&e, "e", "", "public exponent (decimal)")
	cmd.Flags().StringVar(&n, "n", "", "modulus (decimal)")
	cmd.Flags().String("key", "", "key file produced by keygen")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}

func (a *app) decryptCmd() *cobra.Command {
	var ciphertext string
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a ciphertext with a key file.",
		Long: `Decrypt a ciphertext produced by encrypt. The leading comma is optional.
Elements that do not decrypt to a byte value are dropped.`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.bind(cmd, map[string]string{"key.file": "key"})
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			kp, err := a.loadKey()
			if err != nil {
				return err
			}
			pt, err := rsademo.Decrypt(ciphertext, kp)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(pt))
			return err
		},
	}
	cmd.Flags().StringVarP(&ciphertext, "ciphertext", "c", "", "ciphertext to decrypt")
	cmd.Flags().String("key", "", "key file produced by keygen")
	_ = cmd.MarkFlagRequired("ciphertext")
	return cmd
}

func (a *app) primeCmd() *cobra.Command {
	var bits, tries int
	cmd := &cobra.Command{
		Use:   "prime",
		Short: "Sample a probable prime of an exact bit length.",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.bind(cmd, map[string]string{"prime.seed": "seed"})
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := seedFromConfig(a.v.GetString("prime.seed"), "seed")
			if err != nil {
				return err
			}
			p, ok := prime.Generate(bits, tries, s)
			if !ok {
				return fmt.Errorf("%d bits in %d tries: %w", bits, tries, prime.ErrExhausted)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), decimal.Format(p))
			return err
		},
	}
	cmd.Flags().IntVar(&bits, "bits", keypair.PrimeBits, "bit length of the prime")
	cmd.Flags().IntVar(&tries, "tries", keypair.PrimeTries, "candidates to draw before giving up")
	cmd.Flags().String("seed", "", "hex seed")
	return cmd
}

func (a *app) loadKey() (*keypair.Keypair, error) {
	path := a.v.GetString("key.file")
	if path == "" {
		return nil, errors.New("no key file: set --key or key.file")
	}
	return keyfile.Load(path)
}

func seedFromConfig(value, flag string) (seed.Seed, error) {
	if value == "" {
		return seed.Seed{}, fmt.Errorf("--%s is required", flag)
	}
	s, err := seed.ParseHex(value)
	if err != nil {
		return seed.Seed{}, fmt.Errorf("--%s: %w", flag, err)
	}
	return s, nil
}
