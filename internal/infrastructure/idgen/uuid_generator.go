package idgen

import (
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// UUIDGenerator is the production id generator.
type UUIDGenerator struct{}

var _ interfaces.IIDGenerator = UUIDGenerator{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
