package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dashgrid/dashgrid-api/internal/core/domain"
	"github.com/dashgrid/dashgrid-api/internal/core/ports"
)

func newSourceSvc() (*SourceService, *stubSourceRepo) {
	repo := newStubSourceRepo()
	return NewSourceService(repo, zerolog.Nop()), repo
}

func TestSourceService_CreateUniquePerOwner(t *testing.T) {
	svc, repo := newSourceSvc()
	ctx := context.Background()
	in := ports.SourceInput{Name: "broker", Type: "stomp", URL: "ws://mq:15674/ws"}

	if err := svc.CreateSource(ctx, ownerA, in); err != nil {
		t.Fatalf("CreateSource failed: %v", err)
	}
	if err := svc.CreateSource(ctx, ownerA, in); !errors.Is(err, domain.ErrSourceExists) {
		t.Fatalf("expected ErrSourceExists, got %v", err)
	}
	if err := svc.CreateSource(ctx, ownerB, in); err != nil {
		t.Fatalf("same name under another owner must succeed, got %v", err)
	}
	if len(repo.items) != 2 {
		t.Fatalf("expected 2 stored sources, got %d", len(repo.items))
	}
}

func TestSourceService_ChangeSource(t *testing.T) {
	svc, repo := newSourceSvc()
	ctx := context.Background()
	_ = svc.CreateSource(ctx, ownerA, ports.SourceInput{Name: "one"})
	_ = svc.CreateSource(ctx, ownerA, ports.SourceInput{Name: "two"})
	one := repo.items[0]

	if err := svc.ChangeSource(ctx, ownerA, one.ID, ports.SourceInput{Name: "two"}); !errors.Is(err, domain.ErrSourceExists) {
		t.Fatalf("expected ErrSourceExists on rename collision, got %v", err)
	}
	if err := svc.ChangeSource(ctx, ownerA, one.ID, ports.SourceInput{Name: "one", URL: "ws://new"}); err != nil {
		t.Fatalf("keeping the same name must succeed, got %v", err)
	}
	if repo.items[0].URL != "ws://new" {
		t.Fatalf("expected url to be updated, got %+v", repo.items[0])
	}
	if err := svc.ChangeSource(ctx, ownerB, one.ID, ports.SourceInput{Name: "x"}); !errors.Is(err, domain.ErrSourceNotFound) {
		t.Fatalf("expected ErrSourceNotFound for foreign source, got %v", err)
	}
}

func TestSourceService_DeleteSource(t *testing.T) {
	svc, repo := newSourceSvc()
	ctx := context.Background()
	_ = svc.CreateSource(ctx, ownerA, ports.SourceInput{Name: "gone"})
	id := repo.items[0].ID

	if err := svc.DeleteSource(ctx, ownerB, id); !errors.Is(err, domain.ErrSourceNotFound) {
		t.Fatalf("expected ErrSourceNotFound for foreign delete, got %v", err)
	}
	if err := svc.DeleteSource(ctx, ownerA, id); err != nil {
		t.Fatalf("DeleteSource failed: %v", err)
	}
	if err := svc.DeleteSource(ctx, ownerA, id); !errors.Is(err, domain.ErrSourceNotFound) {
		t.Fatalf("expected ErrSourceNotFound on second delete, got %v", err)
	}
}

func TestSourceService_GetSource(t *testing.T) {
	svc, _ := newSourceSvc()
	ctx := context.Background()
	_ = svc.CreateSource(ctx, ownerA, ports.SourceInput{Name: "feed", Type: "mqtt", URL: "tcp://feed"})

	for _, ref := range []string{domain.OwnerSelf, ownerA} {
		src, err := svc.GetSource(ctx, ownerA, ref, "feed")
		if err != nil {
			t.Fatalf("GetSource(%s) failed: %v", ref, err)
		}
		if src.Type != "mqtt" || src.URL != "tcp://feed" {
			t.Fatalf("unexpected source: %+v", src)
		}
	}
	if _, err := svc.GetSource(ctx, ownerB, ownerA, "feed"); !errors.Is(err, domain.ErrSourceNotFound) {
		t.Fatalf("expected ErrSourceNotFound for foreign owner, got %v", err)
	}
	if _, err := svc.GetSource(ctx, ownerB, domain.OwnerSelf, "feed"); !errors.Is(err, domain.ErrSourceNotFound) {
		t.Fatalf("expected ErrSourceNotFound for requester without the source, got %v", err)
	}
}

func TestSourceService_CheckSources(t *testing.T) {
	svc, repo := newSourceSvc()
	ctx := context.Background()
	_ = svc.CreateSource(ctx, ownerA, ports.SourceInput{Name: "existing", Type: "mqtt"})

	created, err := svc.CheckSources(ctx, ownerA, []string{"new-1", "existing", "new-2", "new-1"})
	if err != nil {
		t.Fatalf("CheckSources failed: %v", err)
	}
	if want := []string{"new-1", "new-2"}; !reflect.DeepEqual(created, want) {
		t.Fatalf("want %v got %v", want, created)
	}

	placeholder, err := repo.FindOwnedByName(ctx, ownerA, "new-1", "")
	if err != nil {
		t.Fatalf("placeholder not stored: %v", err)
	}
	if placeholder.Type != domain.DefaultSourceType || placeholder.URL != "" || placeholder.VHost != "" {
		t.Fatalf("unexpected placeholder: %+v", placeholder)
	}

	again, err := svc.CheckSources(ctx, ownerA, []string{"new-1", "new-2"})
	if err != nil {
		t.Fatalf("CheckSources failed: %v", err)
	}
	if len(again) != 0 {
		t.Fatalf("expected nothing new on second run, got %v", again)
	}
}

func TestSourceService_CheckSources_StoreError(t *testing.T) {
	svc, repo := newSourceSvc()
	boom := errors.New("insert failed")
	repo.createErr = boom

	if _, err := svc.CheckSources(context.Background(), ownerA, []string{"x"}); !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
}
