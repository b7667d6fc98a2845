package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var (
	ErrCreatePackageCommandIsNotConstructed = errors.New(
		"CreatePackageCommand must be created via NewCreatePackageCommand constructor",
	)
	ErrSenderNameIsRequired       = errors.New("sender name is required")
	ErrSenderAddressIsRequired    = errors.New("sender address is required")
	ErrRecipientNameIsRequired    = errors.New("recipient name is required")
	ErrRecipientAddressIsRequired = errors.New("recipient address is required")
	ErrWeightIsInvalid            = errors.New("weight must be greater than 0")
)

// CreatePackageCommand represents a request to register a new package in the
// courier system. Encapsulates the shipment details needed to create a
// package entity in the pending status.
//
// Example:
//
//	id, _ := kernel.ParseID("P1")
//	cmd, err := NewCreatePackageCommand(id, "Acme Corp", "1 Industrial Way",
//	    "Jane Doe", "42 Oak St", 2.5)
//	if err != nil {
//	    return fmt.Errorf("invalid package data: %w", err)
//	}
type CreatePackageCommand struct { //nolint:recvcheck //using for validation
	packageID        kernel.ID
	senderName       string
	senderAddress    string
	recipientName    string
	recipientAddress string
	weight           float64

	guard guard.ConstructorGuard
}

// NewCreatePackageCommand creates a command to register a new package.
// Validates that the ID is constructed, all sender and recipient details are
// non-empty, and the weight is positive.
func NewCreatePackageCommand(
	packageID kernel.ID,
	senderName string,
	senderAddress string,
	recipientName string,
	recipientAddress string,
	weight float64,
) (CreatePackageCommand, error) {
	command := CreatePackageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPackageID(packageID),
		command.setSenderName(senderName),
		command.setSenderAddress(senderAddress),
		command.setRecipientName(recipientName),
		command.setRecipientAddress(recipientAddress),
		command.setWeight(weight),
	); err != nil {
		return CreatePackageCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreatePackageCommandIsNotConstructed if validation fails.
func (c CreatePackageCommand) Validate() error {
	return c.guard.Validate(ErrCreatePackageCommandIsNotConstructed)
}

// PackageID returns the package ID from the command.
func (c CreatePackageCommand) PackageID() kernel.ID {
	return c.packageID
}

// SenderName returns the sender name from the command.
func (c CreatePackageCommand) SenderName() string {
	return c.senderName
}

// SenderAddress returns the sender address from the command.
func (c CreatePackageCommand) SenderAddress() string {
	return c.senderAddress
}

// RecipientName returns the recipient name from the command.
func (c CreatePackageCommand) RecipientName() string {
	return c.recipientName
}

// RecipientAddress returns the recipient address from the command.
func (c CreatePackageCommand) RecipientAddress() string {
	return c.recipientAddress
}

// Weight returns the package weight from the command.
func (c CreatePackageCommand) Weight() float64 {
	return c.weight
}

func (c *CreatePackageCommand) setPackageID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.packageID = id
	return nil
}

func (c *CreatePackageCommand) setSenderName(senderName string) error {
	if senderName == "" {
		return ErrSenderNameIsRequired
	}

	c.senderName = senderName
	return nil
}

func (c *CreatePackageCommand) setSenderAddress(senderAddress string) error {
	if senderAddress == "" {
		return ErrSenderAddressIsRequired
	}

	c.senderAddress = senderAddress
	return nil
}

func (c *CreatePackageCommand) setRecipientName(recipientName string) error {
	if recipientName == "" {
		return ErrRecipientNameIsRequired
	}

	c.recipientName = recipientName
	return nil
}

func (c *CreatePackageCommand) setRecipientAddress(recipientAddress string) error {
	if recipientAddress == "" {
		return ErrRecipientAddressIsRequired
	}

	c.recipientAddress = recipientAddress
	return nil
}

func (c *CreatePackageCommand) setWeight(weight float64) error {
	if weight <= 0 {
		return ErrWeightIsInvalid
	}

	c.weight = weight
	return nil
}
