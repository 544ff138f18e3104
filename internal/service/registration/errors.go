package registration

import "errors"

// ErrRegistrationFailed wraps unexpected failures inside the atomic
// User+Profile create. The transaction is rolled back, the caller gets a
// generic message, and the detail is logged server-side only.
var ErrRegistrationFailed = errors.New("registration failed")
