package domain

// Rótulos exibidos no dashboard para origens que não são colaboradoras
const (
	TrafficSourceOrganic  = "Google (Orgánico)"
	TrafficSourceDirect   = "Directo"
	TrafficSourceReferral = "Referencias"
	TrafficSourceUnknown  = "Desconocido"
)

// WeekdayNames são os nomes dos dias da semana exibidos no dashboard,
// indexados como time.Weekday (domingo = 0)
var WeekdayNames = [7]string{"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}

// CollaboratorStat agrega os pedidos atribuídos a uma colaboradora.
// Percentage é a participação sobre o total de pedidos com atribuição utm.
type CollaboratorStat struct {
	Name       string  `json:"name"`
	Sales      int     `json:"sales"`
	Revenue    float64 `json:"revenue"`
	Percentage float64 `json:"percentage"`
}

type TrafficSource struct {
	Source     string  `json:"source"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type DailySales struct {
	Date    string  `json:"date"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type DayOfWeekSales struct {
	Day     string  `json:"day"`
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`
}

type HourlySales struct {
	Hour  string `json:"hour"`
	Sales int    `json:"sales"`
}

type ProductStat struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type DeviceStat struct {
	Device     string  `json:"device"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type PaymentMethodStat struct {
	Method     string  `json:"method"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type ProvinceStat struct {
	Province string `json:"province"`
	Count    int    `json:"count"`
}

// MonthlyMetrics resume o conjunto de pedidos carregado: totais, clientes
// novos x recorrentes e crescimento do mês mais recente sobre o anterior
type MonthlyMetrics struct {
	TotalSales         int     `json:"total_sales"`
	TotalRevenue       float64 `json:"total_revenue"`
	NewCustomers       int     `json:"new_customers"`
	ReturningCustomers int     `json:"returning_customers"`
	SalesGrowth        float64 `json:"sales_growth"`
	RevenueGrowth      float64 `json:"revenue_growth"`
}
