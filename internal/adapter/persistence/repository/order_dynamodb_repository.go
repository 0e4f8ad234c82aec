package repository

import (
	"context"
	"time"

	"retail_assistant/internal/domain/entities"
	"retail_assistant/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultOrdersTableName = "orders"

type orderLineItem struct {
	Category  string `dynamodbav:"category"`
	Brand     string `dynamodbav:"brand"`
	Model     string `dynamodbav:"model"`
	Color       string `dynamodbav:"color,omitempty"`
	MixedColors bool   `dynamodbav:"mixed_colors,omitempty"`
	UnitPrice   string `dynamodbav:"unit_price"`
	Quantity    int    `dynamodbav:"quantity"`
}

type orderItem struct {
	ID            string          `dynamodbav:"id"`
	CustomerName  string          `dynamodbav:"customer_name"`
	CustomerEmail string          `dynamodbav:"customer_email"`
	Country       string          `dynamodbav:"country"`
	ShippingRate  string          `dynamodbav:"shipping_rate"`
	Items         []orderLineItem `dynamodbav:"items"`
	Subtotal      string          `dynamodbav:"subtotal"`
	ShippingCost  string          `dynamodbav:"shipping_cost"`
	Total         string          `dynamodbav:"total"`
	Status        string          `dynamodbav:"status"`
	CreatedAt     string          `dynamodbav:"created_at"`
	UpdatedAt     string          `dynamodbav:"updated_at"`
	OrderDate     string          `dynamodbav:"order_date,omitempty"`
	DeliveryDate  string          `dynamodbav:"delivery_date,omitempty"`
}

// OrderDynamoRepository persists confirmed orders in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Money is stored as decimal strings so amounts round-trip exactly.
type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client, tableName string) *OrderDynamoRepository {
	if tableName == "" {
		tableName = defaultOrdersTableName
	}
	return &OrderDynamoRepository{ddb: ddb, tableName: tableName}
}

// Save writes the full order snapshot. Writing the same id again overwrites
// it, so retries are safe.
func (r *OrderDynamoRepository) Save(ctx context.Context, o entities.Order) error {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	lines := make([]orderLineItem, 0, len(o.Items))
	for _, key := range o.ItemKeys() {
		item := o.Items[key]
		lines = append(lines, orderLineItem{
			Category:    item.Category,
			Brand:       item.Brand,
			Model:       item.Model,
			Color:       item.Color,
			MixedColors: item.MixedColors,
			UnitPrice:   item.UnitPrice.String(),
			Quantity:    item.Quantity,
		})
	}
	return orderItem{
		ID:            o.ID,
		CustomerName:  o.Customer.Name,
		CustomerEmail: o.Customer.Email,
		Country:       o.Country,
		ShippingRate:  o.ShippingRate.String(),
		Items:         lines,
		Subtotal:      o.Subtotal.StringFixed(2),
		ShippingCost:  o.ShippingCost.StringFixed(2),
		Total:         o.Total.StringFixed(2),
		Status:        string(o.Status),
		CreatedAt:     formatTime(o.CreatedAt),
		UpdatedAt:     formatTime(o.UpdatedAt),
		OrderDate:     formatTime(o.OrderDate),
		DeliveryDate:  formatTime(o.DeliveryDate),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	items := make(map[string]entities.OrderItem, len(it.Items))
	for _, line := range it.Items {
		item := entities.OrderItem{
			Category:    line.Category,
			Brand:       line.Brand,
			Model:       line.Model,
			Color:       line.Color,
			MixedColors: line.MixedColors,
			UnitPrice:   parseDecimal(line.UnitPrice),
			Quantity:    line.Quantity,
		}
		items[item.Key()] = item
	}
	return entities.Order{
		ID:           it.ID,
		Customer:     entities.Customer{Name: it.CustomerName, Email: it.CustomerEmail},
		Country:      it.Country,
		ShippingRate: parseDecimal(it.ShippingRate),
		Items:        items,
		Subtotal:     parseDecimal(it.Subtotal),
		ShippingCost: parseDecimal(it.ShippingCost),
		Total:        parseDecimal(it.Total),
		Status:       entities.OrderStatus(it.Status),
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
		OrderDate:    parseTime(it.OrderDate),
		DeliveryDate: parseTime(it.DeliveryDate),
	}
}

func parseDecimal(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
