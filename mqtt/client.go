// client.go - MQTT publisher for placed orders
// Kitchen displays subscribe to the order topic and receive one message per
// place-order request.

package mqtt

import (
	"fmt"
	"time"

	"go-food-shop/models"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/goccy/go-json"
)

const publishTimeout = 5 * time.Second

// OrderLine is one converted cart row inside an OrderEvent.
type OrderLine struct {
	OrderID     uint   `json:"order_id"`
	ProductName string `json:"product_name"`
	Price       int64  `json:"price"`
	Quantity    int    `json:"quantity"`
	Total       int64  `json:"total"`
}

// OrderEvent is the JSON payload published for a placed order batch.
type OrderEvent struct {
	UserID   uint        `json:"user_id"`
	Username string      `json:"username"`
	PlacedAt time.Time   `json:"placed_at"`
	Orders   []OrderLine `json:"orders"`
	Total    int64       `json:"total"`
}

// NewOrderEvent builds the payload for a batch of orders placed together.
func NewOrderEvent(userID uint, username string, orders []models.Order, at time.Time) OrderEvent {
	ev := OrderEvent{
		UserID:   userID,
		Username: username,
		PlacedAt: at.UTC(),
		Orders:   make([]OrderLine, 0, len(orders)),
	}
	for _, o := range orders {
		ev.Orders = append(ev.Orders, OrderLine{
			OrderID:     o.ID,
			ProductName: o.ProductName,
			Price:       o.Price,
			Quantity:    o.Quantity,
			Total:       o.Total,
		})
		ev.Total += o.Total
	}
	return ev
}

// Client wraps a connected paho client.
type Client struct {
	client paho.Client
	topic  string // Order topic
}

// Connect dials the broker and returns a publisher for the order topic.
func Connect(broker, clientID, topic string) (*Client, error) {
	opts := paho.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetConnectTimeout(publishTimeout)

	client := paho.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(publishTimeout) {
		return nil, fmt.Errorf("mqtt connect to %s: timed out", broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect to %s: %w", broker, err)
	}
	return newClient(client, topic), nil
}

func newClient(client paho.Client, topic string) *Client {
	return &Client{client: client, topic: topic}
}

// Publish sends payload to topic with QoS 1. Strings and byte slices are sent
// as is, anything else is JSON encoded.
func (c *Client) Publish(topic string, payload interface{}) error {
	var body []byte
	switch p := payload.(type) {
	case string:
		body = []byte(p)
	case []byte:
		body = p
	default:
		b, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("encode mqtt payload: %w", err)
		}
		body = b
	}

	token := c.client.Publish(topic, 1, false, body)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("mqtt publish to %s: timed out", topic)
	}
	return token.Error()
}

// OrderPlaced publishes an OrderEvent on the order topic.
func (c *Client) OrderPlaced(userID uint, username string, orders []models.Order) error {
	return c.Publish(c.topic, NewOrderEvent(userID, username, orders, time.Now()))
}

// Close disconnects, waiting briefly for in-flight messages.
func (c *Client) Close() {
	c.client.Disconnect(250)
}
