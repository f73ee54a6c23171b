package api

// Package statuses as reported by the backend.
const (
	StatusCreated        = "CREATED"
	StatusPickedUp       = "PICKED_UP"
	StatusInTransit      = "IN_TRANSIT"
	StatusOutForDelivery = "OUT_FOR_DELIVERY"
	StatusDelivered      = "DELIVERED"
	StatusCancelled      = "CANCELLED"
	StatusReturned       = "RETURNED"
)

// Package service types.
const (
	TypeNormalPost = "NORMAL_POST"
	TypeSpeedPost  = "SPEED_POST"
	TypeExpress    = "EXPRESS"
	TypeOvernight  = "OVERNIGHT"
)

// User roles.
const (
	RoleCustomer = "CUSTOMER"
	RoleCourier  = "COURIER"
	RoleAdmin    = "ADMIN"
)

// User is the server-provided identity for an account.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

// Address is a postal address attached to a sender, receiver or hub.
type Address struct {
	Line1   string `json:"line1"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Pincode string `json:"pincode"`
}

// Party identifies one end of a shipment (sender or receiver).
type Party struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Email   string  `json:"email"`
	Address Address `json:"address"`
}

// Package is a shipment as returned by the backend. Timestamps are passed
// through as the backend formats them (ISO local datetimes, no zone).
type Package struct {
	ID             string  `json:"id"`
	TrackingNumber string  `json:"trackingNumber"`
	Sender         Party   `json:"sender"`
	Receiver       Party   `json:"receiver"`
	PackageType    string  `json:"packageType"`
	Weight         float64 `json:"weight"`
	Description    string  `json:"description,omitempty"`
	Amount         float64 `json:"amount"`
	Paid           bool    `json:"paid"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
	DeliveredAt    string  `json:"deliveredAt,omitempty"`
}

// TrackingEvent is one entry in a package's tracking history.
type TrackingEvent struct {
	ID             string `json:"id"`
	TrackingNumber string `json:"trackingNumber"`
	Status         string `json:"status"`
	Location       string `json:"location"`
	Remarks        string `json:"remarks"`
	Timestamp      string `json:"timestamp"`
}

// Hub is a sorting/distribution facility.
type Hub struct {
	ID           string  `json:"id,omitempty"`
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	Location     string  `json:"location"`
	Address      Address `json:"address"`
	ManagerName  string  `json:"managerName,omitempty"`
	ManagerPhone string  `json:"managerPhone,omitempty"`
	Capacity     int64   `json:"capacity"`
	CurrentLoad  int64   `json:"currentLoad"`
	Active       bool    `json:"active"`
}

// StatusCount is a per-status package tally inside the dashboard stats.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// DashboardStats is the admin dashboard summary.
type DashboardStats struct {
	TotalPackages     int64         `json:"totalPackages"`
	CreatedPackages   int64         `json:"createdPackages"`
	InTransitPackages int64         `json:"inTransitPackages"`
	DeliveredPackages int64         `json:"deliveredPackages"`
	CancelledPackages int64         `json:"cancelledPackages"`
	TotalUsers        int64         `json:"totalUsers"`
	TotalCustomers    int64         `json:"totalCustomers"`
	TotalCouriers     int64         `json:"totalCouriers"`
	PackagesByStatus  []StatusCount `json:"packagesByStatus"`
}

// PriceCalculation is the quote returned for a prospective shipment.
type PriceCalculation struct {
	Weight       float64 `json:"weight"`
	PackageType  string  `json:"packageType"`
	BasePrice    float64 `json:"basePrice"`
	WeightCharge float64 `json:"weightCharge"`
	TotalAmount  float64 `json:"totalAmount"`
}

// Notification is a message delivered to the current user.
type Notification struct {
	ID        string `json:"id"`
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Timestamp string `json:"timestamp"`
}

// Page is the server's pagination envelope.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}
