package repository

import (
	"testing"

	"retail_assistant/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderItemMapping(t *testing.T) {
	o := sampleOrder("ORD-1")

	it := toOrderItem(o)
	assert.Equal(t, "2050.00", it.Subtotal)
	assert.Equal(t, "328.00", it.ShippingCost)
	assert.Equal(t, "2378.00", it.Total)
	require.Len(t, it.Items, 2)
	assert.Equal(t, "Belkin", it.Items[0].Brand, "lines are stored in key order")

	av, err := attributevalue.MarshalMap(it)
	require.NoError(t, err)
	var decoded orderItem
	require.NoError(t, attributevalue.UnmarshalMap(av, &decoded))

	back := fromOrderItem(decoded)
	assert.Equal(t, o.ID, back.ID)
	assert.Equal(t, o.Customer, back.Customer)
	assert.True(t, back.Total.Equal(o.Total))
	assert.True(t, back.ShippingRate.Equal(o.ShippingRate))
	assert.True(t, back.DeliveryDate.Equal(o.DeliveryDate))
	assert.Equal(t, "White", back.Items["Belkin Wireless Charger"].Color)
	assert.Equal(t, 2, back.Items["Samsung Galaxy S23"].Quantity)
}

func TestOrderItemMapping_MixedColors(t *testing.T) {
	o := sampleOrder("ORD-2")
	o.AddItem(entities.OrderItem{Category: "smartphones", Brand: "Samsung", Model: "Galaxy S23", Color: "Black", Quantity: 1})
	o.AddItem(entities.OrderItem{Category: "smartphones", Brand: "Samsung", Model: "Galaxy S23", Color: "Green", Quantity: 1})

	av, err := attributevalue.MarshalMap(toOrderItem(o))
	require.NoError(t, err)
	var decoded orderItem
	require.NoError(t, attributevalue.UnmarshalMap(av, &decoded))

	line := fromOrderItem(decoded).Items["Samsung Galaxy S23"]
	assert.True(t, line.MixedColors)
	assert.Empty(t, line.Color)
	assert.Equal(t, 4, line.Quantity)
}

func TestOrderItemMapping_PendingDates(t *testing.T) {
	empty := entities.Order{ID: "ORD-3"}
	it := toOrderItem(empty)
	assert.Empty(t, it.OrderDate)
	assert.Empty(t, it.DeliveryDate)
	assert.True(t, fromOrderItem(it).OrderDate.IsZero())
}

func TestComplaintItemMapping(t *testing.T) {
	c := entities.ComplaintRecord{ID: "CMP-1", Name: "Sara", Email: "sara@example.com", OrderID: "N/A", Complaint: "late", CreatedAt: sampleOrder("x").CreatedAt}
	back := fromComplaintItem(toComplaintItem(c))
	assert.Equal(t, c.ID, back.ID)
	assert.Equal(t, c.OrderID, back.OrderID)
	assert.Equal(t, c.Complaint, back.Complaint)
	assert.True(t, back.CreatedAt.Equal(c.CreatedAt))
}
