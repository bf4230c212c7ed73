// Package keyfile stores key pairs as YAML documents of decimal strings.
//
//	e: "1234..."
//	d: "5678..."
//	"n": "9012..."
//
// Digit-only strings are emitted double-quoted, so readers never see them
// as YAML integers. The key n is quoted as well, since YAML 1.1 readers take
// a bare n for the boolean false. Both spellings of the key load.
package keyfile

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/colbycyphersociety/rsademo/pkg/rsademo/decimal"
	"github.com/colbycyphersociety/rsademo/pkg/rsademo/keypair"
)

// ErrIncomplete is returned for documents missing one of e, d or n.
var ErrIncomplete = errors.New("keyfile: missing field")

type document struct {
	E string `yaml:"e"`
	D string `yaml:"d"`
	N string `yaml:"n"`
}

// Marshal encodes kp as YAML.
func Marshal(kp *keypair.Keypair) ([]byte, error) {
	doc := document{
		E: decimal.Format(kp.E()),
		D: decimal.Format(kp.D()),
		N: decimal.Format(kp.N()),
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("keyfile: marshal: %w", err)
	}
	return out, nil
}

// Unmarshal decodes a key pair from YAML.
func Unmarshal(data []byte) (*keypair.Keypair, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("keyfile: unmarshal: %w", err)
	}
	switch {
	case doc.E == "":
		return nil, fmt.Errorf("%w: e", ErrIncomplete)
	case doc.D == "":
		return nil, fmt.Errorf("%w: d", ErrIncomplete)
	case doc.N == "":
		return nil, fmt.Errorf("%w: n", ErrIncomplete)
	}
	return keypair.FromDecimal(doc.E, doc.D, doc.N)
}

// Load reads a key file from path.
func Load(path string) (*keypair.Keypair, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is chosen by the operator
	if err != nil {
		return nil, fmt.Errorf("keyfile: read: %w", err)
	}
	return Unmarshal(data)
}

// Save writes kp to path with owner-only permissions.
func Save(path string, kp *keypair.Keypair) error {
	data, err := Marshal(kp)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("keyfile: write: %w", err)
	}
	return nil
}
