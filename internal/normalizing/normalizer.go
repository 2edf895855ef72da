// Package normalizing converte registros brutos de pedidos (CSV ou API) no
// formato canônico usado pelo motor de análise. Todas as funções são totais:
// campo malformado degrada para um default seguro, nunca derruba o lote.
package normalizing

import (
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// RawOrder é o formato bruto de um pedido antes da normalização, com todos
// os campos ainda como texto
type RawOrder struct {
	OrderID         string
	OrderDate       string
	Status          string
	Total           string
	ProductName     string
	Quantity        string
	UTMSource       string
	SourceType      string
	DeviceType      string
	ShippingState   string
	ShippingCountry string
	PaymentMethod   string
	CustomerEmail   string
}

// collaboratorAliases mapeia cada grafia conhecida para a identidade
// canônica da colaboradora. O conjunto é fechado e curado: grafia fora da
// tabela NÃO vira colaboradora nova.
var collaboratorAliases = map[string]string{
	"mariajose":  "María José",
	"maria jose": "María José",
	"maria_jose": "María José",
	"majo":       "María José",
	"margareth":  "Margareth",
	"margare":    "Margareth",
	"inma":       "Inma",
}

// nonCollaboratorChannels são origens utm que correspondem a canais, não a
// pessoas. Tratar um canal como colaboradora é pior do que perder uma
// colaboradora não cadastrada, então a tabela é explícita.
var nonCollaboratorChannels = map[string]bool{
	"ig":        true,
	"instagram": true,
	"facebook":  true,
	"fb":        true,
	"tiktok":    true,
	"google":    true,
	"youtube":   true,
	"direct":    true,
	"(direct)":  true,
	"organic":   true,
	"typein":    true,
}

// dateLayouts aceitos para a data do pedido, na ordem de tentativa
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// Order normaliza um registro bruto para o formato canônico
func Order(raw RawOrder) domain.Order {
	return domain.Order{
		OrderID:         strings.TrimSpace(raw.OrderID),
		OrderDate:       parseDate(raw.OrderDate),
		Status:          strings.TrimSpace(raw.Status),
		Total:           parseFloat(raw.Total),
		ProductName:     strings.TrimSpace(raw.ProductName),
		Quantity:        parseQuantity(raw.Quantity),
		SourceType:      SourceType(raw.SourceType),
		Collaborator:    Collaborator(raw.UTMSource),
		DeviceType:      DeviceType(raw.DeviceType),
		ShippingState:   strings.TrimSpace(raw.ShippingState),
		ShippingCountry: strings.TrimSpace(raw.ShippingCountry),
		PaymentMethod:   strings.TrimSpace(raw.PaymentMethod),
		CustomerEmail:   strings.TrimSpace(strings.ToLower(raw.CustomerEmail)),
	}
}

// Collaborator resolve uma origem utm bruta para a identidade canônica da
// colaboradora, ou nil quando a origem é um canal ou não é reconhecida
func Collaborator(source string) *string {
	lower := strings.ToLower(strings.TrimSpace(source))
	if lower == "" {
		return nil
	}

	if name, ok := collaboratorAliases[lower]; ok {
		return &name
	}

	// Canais conhecidos não são colaboradoras e não merecem alerta
	if nonCollaboratorChannels[lower] {
		return nil
	}

	// Origem fora das duas tabelas: pode ser uma colaboradora ainda não
	// cadastrada, então fica um rastro para inspeção
	logrus.WithField("utm_source", source).Debug("Origem utm não reconhecida")
	return nil
}

// SourceType mapeia o tipo de atribuição bruto para o enum fechado
func SourceType(raw string) domain.SourceType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "utm":
		return domain.SourceTypeUTM
	case "typein":
		return domain.SourceTypeTypein
	case "organic":
		return domain.SourceTypeOrganic
	case "referral":
		return domain.SourceTypeReferral
	default:
		return domain.SourceTypeUnknown
	}
}

// DeviceType mapeia o tipo de dispositivo bruto para o enum fechado
func DeviceType(raw string) domain.DeviceType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "mobile":
		return domain.DeviceTypeMobile
	case "desktop":
		return domain.DeviceTypeDesktop
	default:
		return domain.DeviceTypeUnknown
	}
}

func parseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

func parseFloat(raw string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}

func parseQuantity(raw string) int {
	q, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || q < 1 {
		return 1
	}
	return q
}
