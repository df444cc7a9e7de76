package mews

import "github.com/pkg/errors"

var (
	errEmptyReservations = errors.New("connector returned no reservations")
	errEmptyCustomers    = errors.New("connector returned no customers")
)
