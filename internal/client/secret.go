package client

import (
	"time"

	"github.com/spf13/cobra"
)

// secretFlags selects the secret of hide and reveal.
type secretFlags struct {
	password string
	keyFile  string
	remote   bool
}

func (f *secretFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.password, "password", "p", "", "password to derive the key from (prompted when omitted)")
	cmd.Flags().StringVarP(&f.keyFile, "key-file", "k", "", "key file written by exchange")
	cmd.Flags().BoolVar(&f.remote, "remote", false, "run on the configured server")
}

// resolved is the secret material of one request. For a local run secret
// is set from a key file; for a remote run token is.
type resolved struct {
	password string
	secret   []byte
	token    string
}

func (a *App) resolveSecret(f secretFlags) (resolved, error) {
	if f.password != "" && f.keyFile != "" {
		return resolved{}, ErrPasswordAndKeyFile
	}
	if f.remote && a.adapter == nil {
		return resolved{}, ErrNoServer
	}

	if f.keyFile != "" {
		kf, err := readKeyFile(f.keyFile)
		if err != nil {
			return resolved{}, err
		}
		if f.remote {
			if !kf.ExpiresAt.IsZero() && time.Now().After(kf.ExpiresAt) {
				return resolved{}, ErrKeyFileExpired
			}
			return resolved{token: kf.Token}, nil
		}
		secret, err := keyFileSecret(kf)
		if err != nil {
			return resolved{}, err
		}
		return resolved{secret: secret}, nil
	}

	if f.password != "" {
		return resolved{password: f.password}, nil
	}

	password, err := a.passwords.ReadPassword("Password: ")
	if err != nil {
		return resolved{}, err
	}
	return resolved{password: password}, nil
}
