package entity_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/quartzsoft/tempus-api/internal/domain/entity"
	"github.com/quartzsoft/tempus-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
)

func TestSaleBeforeCreate_GeneratesID(t *testing.T) {
	sale := &entity.Sale{}

	err := sale.BeforeCreate(nil)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, sale.ID)
}

func TestSaleBeforeCreate_KeepsExistingID(t *testing.T) {
	id := uuid.New()
	sale := &entity.Sale{ID: id}

	err := sale.BeforeCreate(nil)

	assert.NoError(t, err)
	assert.Equal(t, id, sale.ID)
}

func TestSaleMarshalJSON_CentsToDecimals(t *testing.T) {
	sale := entity.Sale{
		ID:            uuid.New(),
		SubTotal:      1850000,
		Discount:      100000,
		Total:         1750000,
		PaymentMethod: enum.PaymentMethodCard,
		Status:        enum.SaleStatusCompleted,
	}

	data, err := json.Marshal(sale)
	assert.NoError(t, err)

	var out map[string]interface{}
	assert.NoError(t, json.Unmarshal(data, &out))

	assert.Equal(t, 18500.0, out["sub_total"])
	assert.Equal(t, 1000.0, out["discount"])
	assert.Equal(t, 17500.0, out["total"])
}

func TestCashSessionMarshalJSON_OmitsUnsetAmounts(t *testing.T) {
	session := entity.CashSession{
		ID:            uuid.New(),
		Status:        enum.SessionStatusOpen,
		OpeningAmount: 10050,
		OpenedAt:      time.Now(),
	}

	data, err := json.Marshal(session)
	assert.NoError(t, err)

	var out map[string]interface{}
	assert.NoError(t, json.Unmarshal(data, &out))

	assert.Equal(t, 100.5, out["opening_amount"])
	assert.NotContains(t, out, "closing_amount")
	assert.NotContains(t, out, "expected_amount")
}

func TestCashSessionIsOpen(t *testing.T) {
	session := &entity.CashSession{Status: enum.SessionStatusOpen}
	assert.True(t, session.IsOpen())

	session.Status = enum.SessionStatusClosed
	assert.False(t, session.IsOpen())
}

func TestCashSessionDeviation(t *testing.T) {
	closing := int64(25000)
	expected := int64(24800)
	session := &entity.CashSession{ClosingAmount: &closing, ExpectedAmount: &expected}

	assert.Equal(t, int64(200), session.Deviation())
}

func TestCashSessionDeviation_UnsetAmounts(t *testing.T) {
	session := &entity.CashSession{}
	assert.Equal(t, int64(0), session.Deviation())
}
