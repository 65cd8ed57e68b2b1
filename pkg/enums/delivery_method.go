package enums

import "fmt"

// DeliveryMethod identifies how a customer receives an order.
type DeliveryMethod string

const (
	DeliveryMethodSelfPickup  DeliveryMethod = "self_pickup"
	DeliveryMethodOwnDelivery DeliveryMethod = "own_delivery"
	DeliveryMethodCourier     DeliveryMethod = "courier"
)

var validDeliveryMethods = []DeliveryMethod{
	DeliveryMethodSelfPickup,
	DeliveryMethodOwnDelivery,
	DeliveryMethodCourier,
}

// String implements fmt.Stringer.
func (d DeliveryMethod) String() string {
	return string(d)
}

// IsValid reports whether the value is a known DeliveryMethod.
func (d DeliveryMethod) IsValid() bool {
	for _, candidate := range validDeliveryMethods {
		if candidate == d {
			return true
		}
	}
	return false
}

// RequiresAddress reports whether the method needs a shipping address.
func (d DeliveryMethod) RequiresAddress() bool {
	return d == DeliveryMethodOwnDelivery || d == DeliveryMethodCourier
}

// ParseDeliveryMethod converts raw input into a DeliveryMethod.
func ParseDeliveryMethod(value string) (DeliveryMethod, error) {
	for _, candidate := range validDeliveryMethods {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid delivery method %q", value)
}
