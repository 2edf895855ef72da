package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

const (
	ordersTable = "orders o"

	orderColumns = "o.order_id, o.order_date, o.status, o.total, o.product_name, o.quantity, " +
		"o.source_type, o.collaborator, o.device_type, o.shipping_state, o.shipping_country, " +
		"o.payment_method, o.customer_email"
)

type OrderRepository interface {
	GetByMonth(year int, month time.Month) ([]domain.Order, error)
	GetByDateRange(startDate, endDate time.Time) ([]domain.Order, error)
	GetAll() ([]domain.Order, error)
	GetLatestOrderDate() (*time.Time, error)
	SaveOrUpdateBatch(orders []domain.Order) error
}

type orderRepository struct {
	conn *postgres.Connection
}

func NewOrderRepository(conn *postgres.Connection) OrderRepository {
	return &orderRepository{
		conn: conn,
	}
}

// GetByMonth retorna os pedidos concluídos do mês calendário informado
func (r *orderRepository) GetByMonth(year int, month time.Month) ([]domain.Order, error) {
	start, end := utils.MonthBounds(year, month)

	return r.GetByDateRange(start, end)
}

func (r *orderRepository) GetByDateRange(startDate, endDate time.Time) ([]domain.Order, error) {
	query, args, err := squirrel.
		Select(orderColumns).
		From(ordersTable).
		Where(squirrel.Eq{"o.status": "completed"}).
		Where(squirrel.Gt{"o.total": 0}).
		Where(squirrel.GtOrEq{"o.order_date": startDate}).
		Where(squirrel.LtOrEq{"o.order_date": endDate}).
		OrderBy("o.order_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryOrders(query, args...)
}

func (r *orderRepository) GetAll() ([]domain.Order, error) {
	query, args, err := squirrel.
		Select(orderColumns).
		From(ordersTable).
		Where(squirrel.Eq{"o.status": "completed"}).
		Where(squirrel.Gt{"o.total": 0}).
		OrderBy("o.order_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryOrders(query, args...)
}

// GetLatestOrderDate retorna a data do pedido mais recente, ou nil quando a
// tabela está vazia. Usada como marco incremental pela sincronização.
func (r *orderRepository) GetLatestOrderDate() (*time.Time, error) {
	query, args, err := squirrel.
		Select("MAX(o.order_date)").
		From(ordersTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var latest sql.NullTime
	if err := r.conn.QueryRow(query, args...).Scan(&latest); err != nil {
		return nil, fmt.Errorf("erro ao buscar data do último pedido: %w", err)
	}

	if !latest.Valid {
		return nil, nil
	}

	return &latest.Time, nil
}

// SaveOrUpdateBatch insere os pedidos em lote; pedidos já existentes são
// atualizados pelo order_id, o que torna a sincronização idempotente
func (r *orderRepository) SaveOrUpdateBatch(orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	builder := squirrel.StatementBuilder.
		Insert("orders").
		Columns(
			"order_id", "order_date", "status", "total", "product_name", "quantity",
			"source_type", "collaborator", "device_type", "shipping_state",
			"shipping_country", "payment_method", "customer_email",
		).
		Suffix(`
			ON CONFLICT (order_id) DO UPDATE SET
				order_date = EXCLUDED.order_date,
				status = EXCLUDED.status,
				total = EXCLUDED.total,
				product_name = EXCLUDED.product_name,
				quantity = EXCLUDED.quantity,
				source_type = EXCLUDED.source_type,
				collaborator = EXCLUDED.collaborator,
				device_type = EXCLUDED.device_type,
				shipping_state = EXCLUDED.shipping_state,
				shipping_country = EXCLUDED.shipping_country,
				payment_method = EXCLUDED.payment_method,
				customer_email = EXCLUDED.customer_email,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	for _, order := range orders {
		builder = builder.Values(
			order.OrderID,
			order.OrderDate,
			order.Status,
			order.Total,
			order.ProductName,
			order.Quantity,
			string(order.SourceType),
			order.Collaborator,
			string(order.DeviceType),
			order.ShippingState,
			order.ShippingCountry,
			order.PaymentMethod,
			order.CustomerEmail,
		)
	}

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *orderRepository) queryOrders(query string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		order, err := r.scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear pedido: %w", err)
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) scanOrder(rows *sql.Rows) (domain.Order, error) {
	var order domain.Order
	var sourceType, deviceType string
	var collaborator sql.NullString

	err := rows.Scan(
		&order.OrderID,
		&order.OrderDate,
		&order.Status,
		&order.Total,
		&order.ProductName,
		&order.Quantity,
		&sourceType,
		&collaborator,
		&deviceType,
		&order.ShippingState,
		&order.ShippingCountry,
		&order.PaymentMethod,
		&order.CustomerEmail,
	)
	if err != nil {
		return domain.Order{}, err
	}

	order.SourceType = domain.SourceType(sourceType)
	order.DeviceType = domain.DeviceType(deviceType)

	if collaborator.Valid {
		order.Collaborator = &collaborator.String
	}

	return order, nil
}
