package sse

import "time"

// AlertNotifier is the interface services use to emit alert events.
type AlertNotifier interface {
	NotifyPriceDrop(userID, productID, productName string, bestPrice int, bestPlatform string, targetPrice *int, savings int)
}

// HubNotifier implements AlertNotifier using the SSE Hub.
type HubNotifier struct {
	hub *Hub
}

// NewHubNotifier creates a notifier backed by the given Hub.
func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

func (n *HubNotifier) NotifyPriceDrop(userID, productID, productName string, bestPrice int, bestPlatform string, targetPrice *int, savings int) {
	if n.hub.ClientCount() == 0 {
		return
	}
	event := EventPriceDrop
	if targetPrice != nil {
		event = EventTargetPrice
	}
	n.hub.Send(&AlertEvent{
		Event:        event,
		UserID:       userID,
		ProductID:    productID,
		ProductName:  productName,
		BestPrice:    bestPrice,
		BestPlatform: bestPlatform,
		TargetPrice:  targetPrice,
		Savings:      savings,
		Timestamp:    time.Now(),
	})
}

// NopNotifier is a no-op implementation for when SSE is not needed.
type NopNotifier struct{}

func (n *NopNotifier) NotifyPriceDrop(userID, productID, productName string, bestPrice int, bestPlatform string, targetPrice *int, savings int) {
}
