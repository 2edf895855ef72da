// Package importer lê os arquivos exportados pela loja e pelo TikTok
// Analytics e os converte para o formato canônico
package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/normalizing"
)

// Colunas do export de pedidos do WooCommerce
const (
	columnOrderID       = "order_id"
	columnOrderDate     = "order_date"
	columnStatus        = "status"
	columnOrderTotal    = "order_total"
	columnProductName   = "Product Item 1 Name"
	columnQuantity      = "Product Item 1 Quantity"
	columnUTMSource     = "meta:_wc_order_attribution_utm_source"
	columnSourceType    = "meta:_wc_order_attribution_source_type"
	columnDeviceType    = "meta:_wc_order_attribution_device_type"
	columnShippingState = "shipping_state"
	columnCountry       = "shipping_country"
	columnPayment       = "payment_method_title"
	columnEmail         = "customer_email"
)

// OrdersFromCSV lê o export de pedidos e retorna os pedidos normalizados.
// Apenas pedidos concluídos com total positivo entram no resultado; linha
// malformada degrada via normalização, nunca derruba o arquivo inteiro.
func OrdersFromCSV(r io.Reader) ([]domain.Order, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o cabeçalho do CSV: %w", err)
	}

	columns := make(map[string]int, len(header))
	for index, name := range header {
		columns[name] = index
	}

	field := func(record []string, name string) string {
		index, ok := columns[name]
		if !ok || index >= len(record) {
			return ""
		}
		return record[index]
	}

	orders := make([]domain.Order, 0)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("erro ao ler linha do CSV: %w", err)
		}

		order := normalizing.Order(normalizing.RawOrder{
			OrderID:         field(record, columnOrderID),
			OrderDate:       field(record, columnOrderDate),
			Status:          field(record, columnStatus),
			Total:           field(record, columnOrderTotal),
			ProductName:     field(record, columnProductName),
			Quantity:        field(record, columnQuantity),
			UTMSource:       field(record, columnUTMSource),
			SourceType:      field(record, columnSourceType),
			DeviceType:      field(record, columnDeviceType),
			ShippingState:   field(record, columnShippingState),
			ShippingCountry: field(record, columnCountry),
			PaymentMethod:   field(record, columnPayment),
			CustomerEmail:   field(record, columnEmail),
		})

		if order.Status != "completed" || order.Total <= 0 {
			continue
		}

		orders = append(orders, order)
	}

	return orders, nil
}
