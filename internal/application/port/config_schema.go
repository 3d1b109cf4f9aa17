package port

import "github.com/bnema/devconf/internal/domain/entity"

// ConfigSchemaProvider provides settings schema information.
type ConfigSchemaProvider interface {
	// GetSchema returns all settings keys with their metadata.
	GetSchema() []entity.ConfigKeyInfo
}
