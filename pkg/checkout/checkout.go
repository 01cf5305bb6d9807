// Package checkout derives order figures from a cart subtotal and runs the
// simulated payment flow. The shipping threshold and tax rate are fixed
// domain constants, not runtime configuration.
package checkout

import (
	"context"
	"errors"
	"time"
)

const (
	// Orders above this subtotal ship free.
	freeShippingThreshold = 100.0
	flatShippingCost      = 15.99
	taxRate               = 0.08

	// DefaultProcessingDelay models the payment round trip.
	DefaultProcessingDelay = 3 * time.Second
)

// Figures are the derived checkout amounts for a given subtotal.
type Figures struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Calculate derives shipping, tax and the grand total from a subtotal.
// Shipping is free strictly above the threshold; a subtotal of exactly
// 100.00 still pays flat shipping.
func Calculate(subtotal float64) Figures {
	shipping := flatShippingCost
	if subtotal > freeShippingThreshold {
		shipping = 0
	}
	tax := subtotal * taxRate
	return Figures{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

// ShippingInfo is the checkout form's shipping section. Phone is the only
// optional field.
type ShippingInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
}

// Validate checks the required shipping fields in form order, so the
// reported field is always the first one missing.
func (s ShippingInfo) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"firstName", s.FirstName},
		{"lastName", s.LastName},
		{"email", s.Email},
		{"address", s.Address},
		{"city", s.City},
		{"state", s.State},
		{"zipCode", s.ZipCode},
	}
	for _, f := range required {
		if f.value == "" {
			return errors.New("missing required field: " + f.name)
		}
	}
	return nil
}

// PaymentInfo is the checkout form's payment section. The card data is
// never charged; it only gates the simulated submission.
type PaymentInfo struct {
	CardNumber     string `json:"cardNumber"`
	ExpiryDate     string `json:"expiryDate"`
	CVV            string `json:"cvv"`
	CardholderName string `json:"cardholderName"`
}

// Validate checks that every payment field is present.
func (p PaymentInfo) Validate() error {
	if p.CardNumber == "" || p.ExpiryDate == "" || p.CVV == "" || p.CardholderName == "" {
		return errors.New("all payment fields are required")
	}
	return nil
}

// Status is a payment submission state.
type Status string

const (
	StatusSubmitted  Status = "submitted"
	StatusProcessing Status = "processing"
	StatusSucceeded  Status = "succeeded"
)

// Processor runs the simulated payment: submit, a fixed processing delay,
// then unconditional success. There is no failure branch; the only early
// exit is context cancellation.
type Processor struct {
	Delay time.Duration

	// OnStatus, if set, observes each state transition.
	OnStatus func(Status)
}

// NewProcessor returns a processor with the default processing delay.
func NewProcessor() *Processor {
	return &Processor{Delay: DefaultProcessingDelay}
}

// Process runs the submission to its single terminal state.
func (p *Processor) Process(ctx context.Context) (Status, error) {
	p.setStatus(StatusSubmitted)
	p.setStatus(StatusProcessing)

	timer := time.NewTimer(p.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return StatusProcessing, ctx.Err()
	case <-timer.C:
	}

	p.setStatus(StatusSucceeded)
	return StatusSucceeded, nil
}

func (p *Processor) setStatus(s Status) {
	if p.OnStatus != nil {
		p.OnStatus(s)
	}
}
