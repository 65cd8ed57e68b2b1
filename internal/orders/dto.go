package orders

import "github.com/zyreejago/hidroponik/pkg/enums"

// ListFilters describe the inputs supported by the admin order list.
// Query matches order number, tracking code, customer name, phone, email.
type ListFilters struct {
	Status *enums.OrderStatus
	Query  string
}
