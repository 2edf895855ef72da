package domain

import "time"

// SourceType é a classificação do canal de atribuição de um pedido
type SourceType string

const (
	SourceTypeUTM      SourceType = "utm"
	SourceTypeTypein   SourceType = "typein"
	SourceTypeOrganic  SourceType = "organic"
	SourceTypeReferral SourceType = "referral"
	SourceTypeUnknown  SourceType = "unknown"
)

type DeviceType string

const (
	DeviceTypeMobile  DeviceType = "mobile"
	DeviceTypeDesktop DeviceType = "desktop"
	DeviceTypeUnknown DeviceType = "unknown"
)

// Order representa um pedido concluído na loja.
// Collaborator só tem significado quando SourceType é utm; nil indica que a
// origem não é uma colaboradora reconhecida.
type Order struct {
	OrderID         string     `json:"order_id"`
	OrderDate       time.Time  `json:"order_date"`
	Status          string     `json:"status"`
	Total           float64    `json:"total"`
	ProductName     string     `json:"product_name"`
	Quantity        int        `json:"quantity"`
	SourceType      SourceType `json:"source_type"`
	Collaborator    *string    `json:"collaborator"`
	DeviceType      DeviceType `json:"device_type"`
	ShippingState   string     `json:"shipping_state"`
	ShippingCountry string     `json:"shipping_country"`
	PaymentMethod   string     `json:"payment_method"`
	CustomerEmail   string     `json:"customer_email"`
}
