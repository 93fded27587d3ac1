package sse

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoDeserializer(data string) (interface{}, error) { return data, nil }

func Test_StreamDeliversEventsInOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "id: 1\ndata: \"hello\"\n\n")
		fmt.Fprintf(w, "id: 2\ndata: first\n\n")
		fmt.Fprintf(w, "id: 3\ndata: second\n\n")
		w.(http.Flusher).Flush()
	}))
	defer srv.Close()

	var mu sync.Mutex
	var got []string
	done := make(chan struct{})

	s := New(Options{
		URLBuilder:  func(cursor string) string { return srv.URL },
		Deserialize: echoDeserializer,
		Listener: Listener{
			OnEvent: func(pagingToken string, value interface{}) {
				mu.Lock()
				got = append(got, value.(string))
				if len(got) == 2 {
					close(done)
				}
				mu.Unlock()
			},
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)
	defer s.Close()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for events")
	}
	s.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"first", "second"}, got)
	assert.Equal(t, "3", s.Cursor())
}

func Test_StreamSendsLastEventIDOnReconnect(t *testing.T) {
	var attempts int32
	var gotLastEventID atomic.Value
	gotLastEventID.Store("")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&attempts, 1)
		gotLastEventID.Store(r.Header.Get("Last-Event-ID"))
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		if n == 1 {
			fmt.Fprintf(w, "id: 1\ndata: one\n\n")
			w.(http.Flusher).Flush()
			return
		}
		fmt.Fprintf(w, "id: 2\ndata: two\n\n")
		w.(http.Flusher).Flush()
	}))
	defer srv.Close()

	var mu sync.Mutex
	var got []string
	done := make(chan struct{})
	var closeOnce sync.Once

	s := New(Options{
		URLBuilder:       func(cursor string) string { return srv.URL },
		Deserialize:      echoDeserializer,
		ReconnectTimeout: 50 * time.Millisecond,
		Listener: Listener{
			OnEvent: func(pagingToken string, value interface{}) {
				mu.Lock()
				got = append(got, value.(string))
				if len(got) == 2 {
					closeOnce.Do(func() { close(done) })
				}
				mu.Unlock()
			},
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)
	defer s.Close()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for reconnect delivery")
	}
	s.Close()

	assert.Equal(t, "1", gotLastEventID.Load().(string))
}

func Test_StreamIgnoresHelloAndByebyePayloads(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "id: 1\ndata: \"hello\"\n\n")
		fmt.Fprintf(w, "id: 2\ndata: real-event\n\n")
		fmt.Fprintf(w, "id: 3\ndata: \"byebye\"\n\n")
		w.(http.Flusher).Flush()
	}))
	defer srv.Close()

	var mu sync.Mutex
	var got []string
	done := make(chan struct{})
	var closeOnce sync.Once

	s := New(Options{
		URLBuilder:  func(cursor string) string { return srv.URL },
		Deserialize: echoDeserializer,
		Listener: Listener{
			OnEvent: func(pagingToken string, value interface{}) {
				mu.Lock()
				got = append(got, value.(string))
				closeOnce.Do(func() { close(done) })
				mu.Unlock()
			},
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)
	defer s.Close()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the real event")
	}
	s.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"real-event"}, got)
}

func Test_DeserializeFailureReportedWithoutReconnect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "id: 1\ndata: bad-payload\n\n")
		w.(http.Flusher).Flush()
	}))
	defer srv.Close()

	failures := make(chan error, 1)
	s := New(Options{
		URLBuilder: func(cursor string) string { return srv.URL },
		Deserialize: func(data string) (interface{}, error) {
			return nil, assert.AnError
		},
		Listener: Listener{
			OnFailure: func(err error) {
				select {
				case failures <- err:
				default:
				}
			},
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)
	defer s.Close()

	select {
	case err := <-failures:
		assert.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for deserialize failure")
	}
}

func Test_NonRetriableStatusReportsFailureWithoutReconnect(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	failures := make(chan error, 4)
	s := New(Options{
		URLBuilder:       func(cursor string) string { return srv.URL },
		Deserialize:      echoDeserializer,
		ReconnectTimeout: 50 * time.Millisecond,
		Listener: Listener{
			OnFailure: func(err error) {
				select {
				case failures <- err:
				default:
				}
			},
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)
	defer s.Close()

	select {
	case err := <-failures:
		assert.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for failure callback")
	}

	// A non-retriable status must not trigger the monitor's reconnect loop: give it time to
	// misbehave, then confirm the server was hit exactly once.
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
}

func Test_RetriableTransportErrorReconnectsUntilSuccess(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&attempts, 1)
		if n < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "id: 1\ndata: recovered\n\n")
		w.(http.Flusher).Flush()
	}))
	defer srv.Close()

	done := make(chan struct{})
	var once sync.Once

	s := New(Options{
		URLBuilder:       func(cursor string) string { return srv.URL },
		Deserialize:      echoDeserializer,
		ReconnectTimeout: 30 * time.Millisecond,
		Listener: Listener{
			OnEvent: func(pagingToken string, value interface{}) {
				once.Do(func() { close(done) })
			},
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)
	defer s.Close()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for reconnect to eventually succeed")
	}
	assert.GreaterOrEqual(t, atomic.LoadInt32(&attempts), int32(3))
}

func Test_CloseStopsFurtherDelivery(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "id: 1\ndata: one\n\n")
		w.(http.Flusher).Flush()
		<-release
	}))
	defer close(release)
	defer srv.Close()

	var count int32
	first := make(chan struct{})
	var once sync.Once

	s := New(Options{
		URLBuilder:  func(cursor string) string { return srv.URL },
		Deserialize: echoDeserializer,
		Listener: Listener{
			OnEvent: func(pagingToken string, value interface{}) {
				atomic.AddInt32(&count, 1)
				once.Do(func() { close(first) })
			},
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)

	select {
	case <-first:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for first event")
	}

	s.Close()
	snapshot := atomic.LoadInt32(&count)
	time.Sleep(100 * time.Millisecond)
	require.Equal(t, snapshot, atomic.LoadInt32(&count))
}
