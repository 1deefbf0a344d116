package mqtt

import (
	"testing"
	"time"

	"go-food-shop/models"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doneToken struct{ err error }

func (t doneToken) Wait() bool                     { return true }
func (t doneToken) WaitTimeout(time.Duration) bool { return true }
func (t doneToken) Error() error                   { return t.err }
func (t doneToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

type message struct {
	topic string
	qos   byte
	body  []byte
}

// fakeClient records publishes; other paho.Client methods are not used.
type fakeClient struct {
	paho.Client
	sent         []message
	disconnected bool
}

func (f *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token {
	f.sent = append(f.sent, message{topic: topic, qos: qos, body: payload.([]byte)})
	return doneToken{}
}

func (f *fakeClient) Disconnect(uint) { f.disconnected = true }

func TestNewOrderEvent(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	orders := []models.Order{
		{ID: 1, ProductName: "Pizza", Price: 299, Quantity: 2, Total: 598},
		{ID: 2, ProductName: "Salad", Price: 99, Quantity: 1, Total: 99},
	}

	ev := NewOrderEvent(5, "alice", orders, at)
	assert.Equal(t, uint(5), ev.UserID)
	assert.Equal(t, int64(697), ev.Total)
	require.Len(t, ev.Orders, 2)
	assert.Equal(t, "Salad", ev.Orders[1].ProductName)
	assert.Equal(t, at, ev.PlacedAt)
}

func TestOrderPlacedPublishesJSON(t *testing.T) {
	fake := &fakeClient{}
	c := newClient(fake, "shop/orders")

	err := c.OrderPlaced(5, "alice", []models.Order{{ID: 9, ProductName: "Pizza", Price: 299, Quantity: 2, Total: 598}})
	require.NoError(t, err)
	require.Len(t, fake.sent, 1)
	assert.Equal(t, "shop/orders", fake.sent[0].topic)
	assert.Equal(t, byte(1), fake.sent[0].qos)

	var ev OrderEvent
	require.NoError(t, json.Unmarshal(fake.sent[0].body, &ev))
	assert.Equal(t, "alice", ev.Username)
	assert.Equal(t, int64(598), ev.Total)
	assert.Equal(t, uint(9), ev.Orders[0].OrderID)

	c.Close()
	assert.True(t, fake.disconnected)
}

func TestPublishSendsStringsVerbatim(t *testing.T) {
	fake := &fakeClient{}
	c := newClient(fake, "shop/orders")

	require.NoError(t, c.Publish("shop/status", "open"))
	assert.Equal(t, []byte("open"), fake.sent[0].body)
}
