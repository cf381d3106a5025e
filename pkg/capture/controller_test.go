package capture

import (
	"runtime"
	"sync"
	"testing"
	"time"
)

func TestControllerKillOnce(t *testing.T) {
	controller := NewController()
	if controller.Stopped() {
		t.Fatalf("expected running controller")
	}
	if state := controller.State(); state != "running" {
		t.Fatalf("expected running state, got %q", state)
	}

	controller.Kill("first")
	controller.Kill("second")

	if !controller.Stopped() {
		t.Fatalf("expected stopped controller")
	}
	if reason := controller.Reason(); reason != "first" {
		t.Fatalf("expected first reason to stick, got %q", reason)
	}
	if state := controller.State(); state != "stopping" {
		t.Fatalf("expected stopping state, got %q", state)
	}
}

func TestControllerDoneUnblocksWaiters(t *testing.T) {
	controller := NewController()

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-controller.Done()
		}()
	}

	go controller.Kill("concurrent")

	finished := make(chan struct{})
	go func() {
		wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatalf("waiters did not unblock after kill")
	}
}

func TestControllerReasonVisibleOnceStopped(t *testing.T) {
	for i := 0; i < 100; i++ {
		controller := NewController()
		go controller.Kill("concurrent")

		for !controller.Stopped() {
			runtime.Gosched()
		}
		if reason := controller.Reason(); reason != "concurrent" {
			t.Fatalf("expected reason once stopped, got %q", reason)
		}
	}
}
