package kernel

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Courier is one of the fixed delivery channels an invoice ships with.
type Courier string

const (
	CourierST           Courier = "ST"
	CourierProfessional Courier = "Professional"
	// CourierLocal deliveries are hand-carried and never appear on a courier
	// dispatch list.
	CourierLocal Courier = "Local"
)

// Couriers lists the accepted values in display order.
func Couriers() []Courier {
	return []Courier{CourierST, CourierProfessional, CourierLocal}
}

// ParseCourier matches raw case-insensitively against the fixed set.
func ParseCourier(raw string) (Courier, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", errs.NewValueIsRequiredError("courier_name")
	}
	for _, c := range Couriers() {
		if strings.EqualFold(v, string(c)) {
			return c, nil
		}
	}
	return "", errs.NewValueIsInvalidErrorWithCause("courier_name", fmt.Errorf("%q is not a known courier", raw))
}

func (c Courier) String() string {
	return string(c)
}

func (c Courier) Validate() error {
	_, err := ParseCourier(string(c))
	return err
}

// IsDispatchable reports whether the courier collects boxes at day end.
func (c Courier) IsDispatchable() bool {
	return c == CourierST || c == CourierProfessional
}
