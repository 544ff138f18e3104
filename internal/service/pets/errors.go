package pets

import (
	"fmt"

	"github.com/petlink/petlink-api/internal/domain"
)

// ErrNotPetOwner indicates the actor does not own the pet.
var ErrNotPetOwner = fmt.Errorf("%w: not the pet owner", domain.ErrPermissionDenied)
