package order

import "ordering/internal/core/domain/model/kernel"

type trackingTag struct{}

// TrackingID is the public handle customers use to follow an order.
type TrackingID = kernel.TypedID[trackingTag]

func NewTrackingID() TrackingID {
	return kernel.NewTypedID[trackingTag]()
}

func TrackingIDFromString(s string) (TrackingID, error) {
	return kernel.TypedIDFromString[trackingTag](s)
}

func TrackingIDFromUUID(id kernel.UUID) (TrackingID, error) {
	return kernel.TypedIDFromUUID[trackingTag](id)
}
