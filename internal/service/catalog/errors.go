package catalog

import (
	"fmt"

	"github.com/petlink/petlink-api/internal/domain"
)

// Common catalog service errors.
var (
	// ErrNotProvider indicates a non-provider tried to manage services.
	ErrNotProvider = fmt.Errorf("%w: only providers can manage services", domain.ErrPermissionDenied)

	// ErrNotServiceOwner indicates the actor does not own the service.
	ErrNotServiceOwner = fmt.Errorf("%w: not the service owner", domain.ErrPermissionDenied)
)
