package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/nexuslabs/showrunner/pkg/domain"
	"github.com/nexuslabs/showrunner/pkg/ports"
)

// PrefsStoreContractTest is a reusable suite verifying an adapter complies
// with ports.PrefsStore semantics.
func PrefsStoreContractTest(t *testing.T, store ports.PrefsStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("Get_Missing", func(t *testing.T) {
		_, err := store.Get(ctx, "contract-missing")
		if !errors.Is(err, domain.ErrPrefNotFound) {
			t.Errorf("expected ErrPrefNotFound, got %v", err)
		}
	})

	t.Run("Set_Get_RoundTrip", func(t *testing.T) {
		if err := store.Set(ctx, ports.PrefPersona, "ops"); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		got, err := store.Get(ctx, ports.PrefPersona)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got != "ops" {
			t.Errorf("expected 'ops', got %q", got)
		}
	})

	t.Run("Set_Overwrite", func(t *testing.T) {
		if err := store.Set(ctx, ports.PrefTheme, "dark"); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if err := store.Set(ctx, ports.PrefTheme, "light"); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		got, err := store.Get(ctx, ports.PrefTheme)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got != "light" {
			t.Errorf("expected 'light', got %q", got)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := store.Set(ctx, ports.PrefIndustry, "tech"); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if err := store.Delete(ctx, ports.PrefIndustry); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		_, err := store.Get(ctx, ports.PrefIndustry)
		if !errors.Is(err, domain.ErrPrefNotFound) {
			t.Errorf("expected ErrPrefNotFound after delete, got %v", err)
		}
	})

	t.Run("Delete_Missing_IsNoop", func(t *testing.T) {
		if err := store.Delete(ctx, "contract-never-set"); err != nil {
			t.Errorf("deleting a missing key should not error, got %v", err)
		}
	})
}
