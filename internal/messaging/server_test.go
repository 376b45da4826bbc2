package messaging

import (
	"context"
	"testing"
	"time"

	"github.com/pixil98/go-testutil"
)

func TestNatsServer_PublishBeforeStart(t *testing.T) {
	s, err := NewNatsServer(WithPort(RandomPort))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertErrorContains(t, s.Publish("dungeon.x.command", []byte("{}")), "not started")
	_, err = s.Subscribe("dungeon.>", func([]byte) {})
	testutil.AssertErrorContains(t, err, "not started")
}

func TestNatsServer_PublishSubscribe(t *testing.T) {
	s, err := NewNatsServer(WithPort(RandomPort), WithStartTimeout(5*time.Second))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()
	defer func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("unexpected error from Start: %v", err)
		}
	}()

	select {
	case <-s.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("server did not become ready")
	}

	got := make(chan []byte, 1)
	unsub, err := s.Subscribe(EndSubject("abc"), func(data []byte) { got <- data })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer unsub()
	if err := s.Flush(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	NewEventPublisher(s, "abc").SessionEnded(ctx, "Герой", "exit", 5)

	select {
	case data := <-got:
		if len(data) == 0 {
			t.Error("expected event payload")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestNatsServerOpts(t *testing.T) {
	tests := map[string]struct {
		opts       []ServerOpt
		expTimeout time.Duration
		expHost    string
		expPort    int
	}{
		"defaults": {
			expTimeout: 10 * time.Second,
			expHost:    "127.0.0.1",
			expPort:    4222,
		},
		"overrides": {
			opts:       []ServerOpt{WithStartTimeout(time.Second), WithHost("0.0.0.0"), WithPort(RandomPort)},
			expTimeout: time.Second,
			expHost:    "0.0.0.0",
			expPort:    RandomPort,
		},
		"non-positive timeout keeps default": {
			opts:       []ServerOpt{WithStartTimeout(0), WithPort(RandomPort)},
			expTimeout: 10 * time.Second,
			expHost:    "127.0.0.1",
			expPort:    RandomPort,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := NewNatsServer(tt.opts...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "timeout", s.startupTimeout, tt.expTimeout)
			testutil.AssertEqual(t, "host", s.host, tt.expHost)
			testutil.AssertEqual(t, "port", s.port, tt.expPort)
		})
	}
}
