package client

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/go-stego-channel/models"
)

// DefaultKeyFile is where exchange stores its result unless --out is set.
const DefaultKeyFile = "stego.key"

func readKeyFile(path string) (models.KeyFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return models.KeyFile{}, err
	}

	var kf models.KeyFile
	if err = json.Unmarshal(raw, &kf); err != nil {
		return models.KeyFile{}, fmt.Errorf("%w: %w", ErrInvalidKeyFile, err)
	}
	if kf.Secret == "" {
		return models.KeyFile{}, fmt.Errorf("%w: no secret", ErrInvalidKeyFile)
	}
	return kf, nil
}

// writeKeyFile stores kf readable by the owner only.
func writeKeyFile(path string, kf models.KeyFile) error {
	raw, err := json.MarshalIndent(kf, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}

func keyFileSecret(kf models.KeyFile) ([]byte, error) {
	secret, err := hex.DecodeString(kf.Secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKeyFile, err)
	}
	return secret, nil
}
