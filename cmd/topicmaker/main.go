package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"time"

	"github.com/niksmo/storefront/config"
	"github.com/niksmo/storefront/internal/adapter"
	"github.com/niksmo/storefront/pkg/sigctx"
	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
)

const (
	partitions        = 3
	replicationFactor = 3
	cleanupDelete     = "delete"
	retentionWeek     = "604800000"
)

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	if !cfg.BrokerConfigured() {
		printFail(errors.New("broker.seed_brokers is empty"))
		return
	}

	tlsCfg, err := adapter.MakeTLSConfig(cfg.Broker.TLS)
	if err != nil {
		printFail(err)
		return
	}

	cl := createClient(cfg.Broker.SeedBrokers, tlsCfg)
	defer cl.Close()

	topics := []string{cfg.Broker.Topics.OrdersPlaced}

	printStart(topics)
	defer printComplete(time.Now())

	if err := makeTopics(sigCtx, cl, topicConfig(), topics...); err != nil {
		printFail(err)
		return
	}
}

func createClient(seedBrokers []string, tlsCfg *tls.Config) *kadm.Client {
	opts := []kgo.Opt{kgo.SeedBrokers(seedBrokers...)}
	if tlsCfg != nil {
		opts = append(opts, kgo.DialTLSConfig(tlsCfg))
	}
	cl, err := kadm.NewOptClient(opts...)
	if err != nil {
		panic(err) // develop mistake
	}
	return cl
}

// topicConfig keeps order events for a week; they are keyed by order id
// and never compacted.
func topicConfig() map[string]*string {
	var (
		cleanupPolicy = cleanupDelete
		retention     = retentionWeek
		minISR        = "1"
	)
	return map[string]*string{
		"cleanup.policy":      &cleanupPolicy,
		"retention.ms":        &retention,
		"min.insync.replicas": &minISR,
	}
}

func makeTopics(
	ctx context.Context, cl *kadm.Client, config map[string]*string, topics ...string,
) error {
	responses, err := cl.CreateTopics(
		ctx,
		partitions,
		replicationFactor,
		config,
		topics...,
	)

	if err != nil {
		return err
	}

	var errs []error
	for _, res := range responses.Sorted() {
		err := res.Err
		if err != nil {
			if errors.Is(res.Err, kerr.TopicAlreadyExists) {
				fmt.Printf("topic: %q already exists\n", res.Topic)
			} else {
				errs = append(errs, err)
			}
			continue
		}
		fmt.Printf("topic: %q successfully created\n", res.Topic)
	}

	return errors.Join(errs...)
}

func printStart(topics []string) {
	fmt.Println("initializing topics...")
	for _, t := range topics {
		fmt.Printf("\t- %q\n", t)
	}
	fmt.Println()
}

func printComplete(start time.Time) {
	fmt.Printf("\ncomplete in %s\n", time.Since(start))
}

func printFail(err error) {
	fmt.Printf("failed to create topics: \n%s\n", err)
}
