package entities

import (
	"strings"
	"time"
)

// TrackingEvent неизменяем после добавления.
type TrackingEvent struct {
	ID        int64
	OrderID   string
	Status    string
	Location  string
	Note      string
	CreatedAt time.Time
}

type TrackingCreate struct {
	Status   string
	Location string
	Note     string
}

// Известные этапы производства. Метка события свободная, но если она совпадает
// с этапом без учета регистра, сохраняется каноническое написание.
var TrackingStages = []string{
	"Cutting Completed",
	"Sewing Started",
	"Sewing Completed",
	"Finishing",
	"Quality Check Passed",
	"Packed",
	"Shipped",
	"Out for Delivery",
	"Delivered",
}

func NormalizeTrackingStage(label string) string {
	label = strings.TrimSpace(label)
	for _, stage := range TrackingStages {
		if strings.EqualFold(stage, label) {
			return stage
		}
	}
	return label
}
