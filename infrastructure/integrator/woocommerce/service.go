package woocommerce

import (
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	wcdomain "github.com/vfg2006/sales-analytics-api/infrastructure/integrator/woocommerce/domain"
	"github.com/vfg2006/sales-analytics-api/infrastructure/integrator/woocommerce/wcclient"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/normalizing"
)

type WooCommerceIntegrator interface {
	FetchOrdersSince(after *time.Time) ([]domain.Order, error)
}

type WooCommerceService struct {
	cfg    *config.Config
	Client wcclient.Client
}

func New(cfg *config.Config, client wcclient.Client) WooCommerceIntegrator {
	return &WooCommerceService{
		cfg:    cfg,
		Client: client,
	}
}

// FetchOrdersSince baixa todos os pedidos concluídos criados depois de
// after (todos quando nil), paginando até a última página, e devolve os
// pedidos já normalizados
func (s *WooCommerceService) FetchOrdersSince(after *time.Time) ([]domain.Order, error) {
	afterParam := ""
	if after != nil {
		afterParam = after.Format(time.RFC3339)
	}

	orders := make([]domain.Order, 0)

	for page := 1; ; page++ {
		wcOrders, totalPages, err := s.Client.GetOrdersPage(wcclient.OrdersConsultationParams{
			Page:  page,
			After: afterParam,
		})
		if err != nil {
			return nil, err
		}

		if len(wcOrders) == 0 {
			break
		}

		for _, wcOrder := range wcOrders {
			orders = append(orders, mapOrder(wcOrder))
		}

		if page >= totalPages {
			break
		}
	}

	logrus.WithFields(logrus.Fields{
		"orders": len(orders),
		"after":  afterParam,
	}).Info("Pedidos baixados do WooCommerce")

	return orders, nil
}

func mapOrder(wcOrder wcdomain.WCOrder) domain.Order {
	productName := "Consulta"
	quantity := "1"
	if len(wcOrder.LineItems) > 0 {
		productName = wcOrder.LineItems[0].Name
		quantity = strconv.Itoa(wcOrder.LineItems[0].Quantity)
	}

	country := wcOrder.Shipping.Country
	if country == "" {
		country = "ES"
	}

	return normalizing.Order(normalizing.RawOrder{
		OrderID:         strconv.Itoa(wcOrder.ID),
		OrderDate:       wcOrder.DateCreated,
		Status:          wcOrder.Status,
		Total:           wcOrder.Total,
		ProductName:     productName,
		Quantity:        quantity,
		UTMSource:       wcOrder.Meta(wcdomain.MetaUTMSource),
		SourceType:      wcOrder.Meta(wcdomain.MetaSourceType),
		DeviceType:      wcOrder.Meta(wcdomain.MetaDeviceType),
		ShippingState:   wcOrder.Shipping.State,
		ShippingCountry: country,
		PaymentMethod:   wcOrder.PaymentMethodTitle,
		CustomerEmail:   wcOrder.Billing.Email,
	})
}
