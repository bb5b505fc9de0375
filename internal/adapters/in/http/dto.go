package http

import (
	"time"

	"fulfillment/internal/core/application/usecases/queries"
)

// ShipmentRequest is the wire representation of a shipment on create and update.
// Carrier, service level and status travel as their wire strings; empty service
// level and status fall back to the defaults.
type ShipmentRequest struct {
	Tracking     string     `json:"tracking"`
	Carrier      string     `json:"carrier"`
	ServiceLevel string     `json:"serviceLevel,omitempty"`
	Cost         float64    `json:"cost"`
	DispatchedOn *time.Time `json:"dispatchedOn,omitempty"`
	EstimatedOn  *time.Time `json:"estimatedOn,omitempty"`
	Status       string     `json:"status,omitempty"`
}

// CreateOrderRequest is the wire representation of the coordinated
// create-order-with-shipment operation. The shipment part is required.
type CreateOrderRequest struct {
	Number       string           `json:"number"`
	Date         time.Time        `json:"date"`
	CustomerName string           `json:"customerName"`
	Total        float64          `json:"total"`
	Status       string           `json:"status,omitempty"`
	Shipment     *ShipmentRequest `json:"shipment"`
}

// UpdateOrderRequest is the wire representation of an order update.
// The shipment reference is not part of the update surface.
type UpdateOrderRequest struct {
	Number       string    `json:"number"`
	Date         time.Time `json:"date"`
	CustomerName string    `json:"customerName"`
	Total        float64   `json:"total"`
	Status       string    `json:"status,omitempty"`
}

// ShipmentResponse is the wire representation of a shipment read model.
type ShipmentResponse struct {
	ID           int64      `json:"id"`
	Tracking     string     `json:"tracking"`
	Carrier      string     `json:"carrier"`
	ServiceLevel string     `json:"serviceLevel"`
	Cost         float64    `json:"cost"`
	DispatchedOn *time.Time `json:"dispatchedOn,omitempty"`
	EstimatedOn  *time.Time `json:"estimatedOn,omitempty"`
	Status       string     `json:"status"`
}

// OrderResponse is the wire representation of an order read model.
// Shipment is omitted when no active shipment is attached.
type OrderResponse struct {
	ID           int64             `json:"id"`
	Number       string            `json:"number"`
	Date         time.Time         `json:"date"`
	CustomerName string            `json:"customerName"`
	Total        float64           `json:"total"`
	Status       string            `json:"status"`
	Shipment     *ShipmentResponse `json:"shipment,omitempty"`
}

// CreatedResponse carries the store-assigned identifier of a created aggregate.
type CreatedResponse struct {
	ID int64 `json:"id"`
}

// ErrorResponse is the wire representation of a failed operation.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func shipmentResponseFromReadModel(m queries.ShipmentResponse) ShipmentResponse {
	return ShipmentResponse{
		ID:           m.ID.Int64(),
		Tracking:     m.Tracking,
		Carrier:      m.Carrier,
		ServiceLevel: m.ServiceLevel,
		Cost:         m.Cost,
		DispatchedOn: m.DispatchedOn,
		EstimatedOn:  m.EstimatedOn,
		Status:       m.Status,
	}
}

func orderResponseFromReadModel(m queries.OrderResponse) OrderResponse {
	resp := OrderResponse{
		ID:           m.ID.Int64(),
		Number:       m.Number,
		Date:         m.Date,
		CustomerName: m.CustomerName,
		Total:        m.Total,
		Status:       m.Status,
	}
	if m.Shipment != nil {
		attached := shipmentResponseFromReadModel(*m.Shipment)
		resp.Shipment = &attached
	}
	return resp
}
