package rsademo

import (
	"github.com/colbycyphersociety/rsademo/pkg/rsademo/keypair"
	"github.com/colbycyphersociety/rsademo/pkg/rsademo/logging"
)

// Config carries optional dependencies for the facade. The zero value is
// ready to use and logs nothing.
type Config struct {
	// Logger receives key-construction diagnostics. Nil discards them.
	Logger logging.Logger
}

func (c Config) builder() *keypair.Builder {
	if c.Logger == nil {
		return keypair.NewBuilder()
	}
	return keypair.NewBuilder(keypair.WithLogger(c.Logger))
}
