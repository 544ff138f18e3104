package booking

import (
	"fmt"

	"github.com/petlink/petlink-api/internal/domain"
)

// ErrNotAppointmentParty indicates the actor is neither the booking client
// nor the provider owning the referenced service.
var ErrNotAppointmentParty = fmt.Errorf("%w: not a party to this appointment", domain.ErrPermissionDenied)
