package domain

// WCOrder é o formato bruto de um pedido retornado pela REST API do
// WooCommerce. Total vem como string e as atribuições vêm em meta_data.
type WCOrder struct {
	ID                 int        `json:"id"`
	Number             string     `json:"number"`
	DateCreated        string     `json:"date_created"`
	Status             string     `json:"status"`
	Total              string     `json:"total"`
	LineItems          []LineItem `json:"line_items"`
	MetaData           []Meta     `json:"meta_data"`
	Billing            Billing    `json:"billing"`
	Shipping           Shipping   `json:"shipping"`
	PaymentMethodTitle string     `json:"payment_method_title"`
}

type LineItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type Meta struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type Billing struct {
	Email string `json:"email"`
}

type Shipping struct {
	State   string `json:"state"`
	Country string `json:"country"`
}

// Chaves de meta_data gravadas pelo plugin de atribuição do WooCommerce
const (
	MetaUTMSource  = "_wc_order_attribution_utm_source"
	MetaSourceType = "_wc_order_attribution_source_type"
	MetaDeviceType = "_wc_order_attribution_device_type"
)

// Meta retorna o valor da chave de meta_data, ou vazio quando ausente
func (o WCOrder) Meta(key string) string {
	for _, meta := range o.MetaData {
		if meta.Key == key {
			return meta.Value
		}
	}
	return ""
}
