package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"
	"trip-log-service/internal/domain"
	"trip-log-service/internal/platform/obs"

	"github.com/rabbitmq/amqp091-go"
)

const (
	TripExchange          = "trip_events"
	TripPlannedRoutingKey = "trip.planned"
)

// RabbitTripPublisher publishes trip events to a durable topic exchange.
// A background goroutine re-dials when the connection drops.
type RabbitTripPublisher struct {
	url       string
	mu        sync.RWMutex
	conn      *amqp091.Connection
	ch        *amqp091.Channel
	connClose chan *amqp091.Error
	isClosed  atomic.Bool
}

func NewRabbitTripPublisher(url string) (*RabbitTripPublisher, error) {
	p := &RabbitTripPublisher{url: url}
	if err := p.createChannel(); err != nil {
		return nil, fmt.Errorf("connect rabbitmq: %w", err)
	}

	go p.reconnectConn()
	return p, nil
}

func (p *RabbitTripPublisher) createChannel() error {
	conn, err := amqp091.Dial(p.url)
	if err != nil {
		return err
	}

	ch, err := conn.Channel()
	if err != nil {
		return errors.Join(conn.Close(), err)
	}

	err = ch.ExchangeDeclare(
		TripExchange, // name
		"topic",      // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // args
	)
	if err != nil {
		return errors.Join(conn.Close(), err)
	}

	connClose := make(chan *amqp091.Error, 1)
	conn.NotifyClose(connClose)

	p.mu.Lock()
	p.conn = conn
	p.ch = ch
	p.connClose = connClose
	p.mu.Unlock()
	return nil
}

func (p *RabbitTripPublisher) reconnectConn() {
	for {
		p.mu.RLock()
		connClose := p.connClose
		p.mu.RUnlock()

		<-connClose
		if p.isClosed.Load() {
			return
		}
		log.Printf("rabbitmq connection lost")
		for {
			if p.isClosed.Load() {
				return
			}
			if err := p.createChannel(); err != nil {
				log.Printf("rabbitmq reconnect failed: err=%v", err)
				time.Sleep(3 * time.Second)
				continue
			}
			log.Printf("rabbitmq reconnected")
			break
		}
	}
}

// PublishTripPlanned sends a trip.planned event carrying the trip summary.
func (p *RabbitTripPublisher) PublishTripPlanned(ctx context.Context, trip *domain.Trip) (err error) {
	defer obs.Time(ctx, "broker.PublishTripPlanned")(&err)

	body, err := json.Marshal(newTripPlannedEvent(trip))
	if err != nil {
		return fmt.Errorf("publish trip planned: encode event: %w", err)
	}

	p.mu.RLock()
	ch := p.ch
	p.mu.RUnlock()

	err = ch.PublishWithContext(ctx,
		TripExchange,
		TripPlannedRoutingKey,
		false,
		false,
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    trip.ID,
			Timestamp:    trip.CreatedAt,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish trip planned id=%s: %w", trip.ID, err)
	}
	return nil
}

func (p *RabbitTripPublisher) Close() error {
	p.isClosed.Store(true)

	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.conn.Close()
}
