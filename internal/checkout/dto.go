package checkout

import "io"

// ProofUpload is the payment proof file attached to a checkout.
type ProofUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// Input carries the multipart checkout form plus the cart session.
type Input struct {
	CartSessionID  string
	CustomerName   string
	CustomerPhone  string
	CustomerEmail  *string
	DeliveryMethod string
	PaymentMethod  string
	Notes          *string
	Address        string
	ProvinceID     string
	CityID         string
	Courier        string
	CourierService string
	Proof          *ProofUpload
}
