package domain

import "errors"

// Error kinds the API layer maps to response shapes. Repositories and
// services wrap these with fmt.Errorf("...: %w", ...) so callers can use
// errors.Is.
var (
	ErrScooterNotFound = errors.New("scooter not found")
	ErrClientNotFound  = errors.New("client not found")
	ErrRentalNotFound  = errors.New("rental not found")
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrScooterUnavailable signals the availability guard: no free unit of
	// the scooter model (quantity - active rentals - maintenance <= 0).
	ErrScooterUnavailable = errors.New("scooter is not available for rent")

	// ErrScooterHasRentals blocks deleting a scooter with rental history.
	ErrScooterHasRentals = errors.New("scooter has rental history and cannot be deleted")

	// ErrRentalNotActive / ErrRentalNotCompleted guard the lifecycle
	// transitions: complete requires active, revert requires completed.
	ErrRentalNotActive    = errors.New("rental is not active")
	ErrRentalNotCompleted = errors.New("rental is not completed")

	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrValidation marks input the schema check let through but business
	// rules reject, e.g. an end date before the start date.
	ErrValidation = errors.New("validation failed")
)
