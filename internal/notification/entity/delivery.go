package entity

import "time"

// DeliveryStatus tracks an SMS delivery attempt through its lifecycle.
type DeliveryStatus string

const (
	DeliveryStatusQueued DeliveryStatus = "queued"
	DeliveryStatusSent   DeliveryStatus = "sent"
	DeliveryStatusFailed DeliveryStatus = "failed"
)

func (s DeliveryStatus) String() string {
	return string(s)
}

// DeliveryLog records one SMS handed to the gateway.
type DeliveryLog struct {
	ID        int64
	Phone     string
	Message   string
	Status    DeliveryStatus
	Error     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateDeliveryLog carries the fields for a new delivery record.
type CreateDeliveryLog struct {
	ID      int64
	Phone   string
	Message string
}

// UpdateDeliveryLog moves a delivery record to a terminal status.
type UpdateDeliveryLog struct {
	ID     int64
	Status DeliveryStatus
	Error  string
}
