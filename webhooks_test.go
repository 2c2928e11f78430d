package bitly_test

import (
	"context"
	"sync"
	"testing"

	"github.com/kbukum/bitly"
	"github.com/kbukum/bitly/bitlytest"
)

func TestWebhooks_Lifecycle(t *testing.T) {
	srv := bitlytest.NewServer()
	defer srv.Close()

	ctx := context.Background()
	c := newTestClient(t, srv)

	created, err := c.Webhooks().Create(ctx, bitly.WebhookRequest{
		Name:             "deploys",
		URL:              "https://hooks.example.com/bitly",
		Event:            "bitlink.created",
		OrganizationGUID: bitlytest.DefaultOrganizationGUID,
		IsActive:         true,
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if created.GUID == "" {
		t.Fatal("expected generated guid")
	}

	list, err := c.Webhooks().List(ctx, bitlytest.DefaultOrganizationGUID)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(list.Webhooks) != 1 {
		t.Fatalf("expected 1 webhook, got %d", len(list.Webhooks))
	}

	updated, err := c.Webhooks().Update(ctx, created.GUID, bitly.WebhookRequest{Name: "renamed"})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if updated.Name != "renamed" || updated.IsActive {
		t.Errorf("unexpected update result %+v", updated)
	}

	if err := c.Webhooks().Delete(ctx, created.GUID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := c.Webhooks().Get(ctx, created.GUID); !bitly.IsNotFound(err) {
		t.Errorf("expected not found after delete, got %v", err)
	}
}

func TestWebhooks_CreateRequiresFields(t *testing.T) {
	srv := bitlytest.NewServer()
	defer srv.Close()

	c := newTestClient(t, srv)
	if _, err := c.Webhooks().Create(context.Background(), bitly.WebhookRequest{Name: "x"}); err == nil {
		t.Fatal("expected validation error")
	}
	if srv.Requests() != 0 {
		t.Errorf("expected no request, got %d", srv.Requests())
	}
}

func TestWebhooks_ConcurrentGetAndUpdate(t *testing.T) {
	srv := bitlytest.NewServer()
	defer srv.Close()

	ctx := context.Background()
	c := newTestClient(t, srv)
	created, err := c.Webhooks().Create(ctx, bitly.WebhookRequest{
		Name:             "hook",
		URL:              "https://hooks.example.com/a",
		OrganizationGUID: bitlytest.DefaultOrganizationGUID,
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 40)
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if _, err := c.Webhooks().Get(ctx, created.GUID); err != nil {
				errs <- err
			}
		}()
		go func(i int) {
			defer wg.Done()
			if _, err := c.Webhooks().Update(ctx, created.GUID, bitly.WebhookRequest{IsActive: i%2 == 0}); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent call error: %v", err)
	}
}
