package publisher

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"se-server/config"
	"se-server/models"
)

// severityRank orders alert severities for the publish threshold.
var severityRank = map[string]int{
	"low":      0,
	"medium":   1,
	"high":     2,
	"critical": 3,
}

// AlertPublisher pushes maintenance alerts to an MQTT broker so external
// dashboards and automations can subscribe. Disabled unless configured.
type AlertPublisher struct {
	client      mqtt.Client
	topicPrefix string
	minSeverity string
	enabled     bool
}

// New creates a publisher from config. With MQTT disabled it returns a
// no-op publisher rather than an error.
func New(cfg config.MQTTConfig) (*AlertPublisher, error) {
	if !cfg.Enabled {
		return &AlertPublisher{}, nil
	}
	if cfg.Broker == "" {
		return nil, fmt.Errorf("MQTT broker address is required when enabled")
	}

	topicPrefix := cfg.TopicPrefix
	if topicPrefix == "" {
		topicPrefix = "smartelectro"
	}
	minSeverity := cfg.MinSeverity
	if _, ok := severityRank[minSeverity]; !ok {
		minSeverity = "high"
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s", cfg.Broker))
	opts.SetClientID("se-server")
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectTimeout(10 * time.Second)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("connecting to MQTT broker: %w", token.Error())
	}

	return &AlertPublisher{
		client:      client,
		topicPrefix: topicPrefix,
		minSeverity: minSeverity,
		enabled:     true,
	}, nil
}

// alertPayload is the wire shape subscribers receive.
type alertPayload struct {
	EquipmentType string   `json:"equipment_type"`
	Severity      string   `json:"severity"`
	HealthScore   float64  `json:"health_score"`
	Alerts        []string `json:"alerts"`
	PublishedAt   string   `json:"published_at"`
}

// PublishMaintenanceAlert forwards a maintenance score when it reaches the
// configured severity. Below the threshold it is a silent no-op.
func (p *AlertPublisher) PublishMaintenanceAlert(score models.MaintenanceScoreResponse) error {
	if !p.enabled {
		return nil
	}
	if severityRank[score.Severity] < severityRank[p.minSeverity] {
		return nil
	}

	payload := alertPayload{
		EquipmentType: score.EquipmentType,
		Severity:      score.Severity,
		HealthScore:   score.HealthScore,
		Alerts:        score.Alerts,
		PublishedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling alert payload: %w", err)
	}

	topic := fmt.Sprintf("%s/maintenance/%s", p.topicPrefix, score.EquipmentType)
	if token := p.client.Publish(topic, 1, false, data); token.Wait() && token.Error() != nil {
		return fmt.Errorf("publishing alert to %s: %w", topic, token.Error())
	}
	log.Printf("[AlertPublisher] Published %s alert for %s", score.Severity, score.EquipmentType)
	return nil
}

// Close disconnects from the broker.
func (p *AlertPublisher) Close() {
	if p.enabled && p.client != nil {
		p.client.Disconnect(250)
	}
}
