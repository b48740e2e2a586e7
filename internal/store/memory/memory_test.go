package memory

import (
	"context"
	"errors"
	"testing"

	"jizhang/internal/core"
)

func TestAppendAndList(t *testing.T) {
	s := New()
	ctx := context.Background()

	r1 := core.ExpenseRecord{Date: "2024-03-15", Amount: 35, Category: core.CategoryFood, Note: "午餐"}
	r2 := core.ExpenseRecord{Date: "2024-03-15", Amount: 20, Category: core.CategoryTransport, Note: "打车"}

	first, err := s.Append(ctx, r1)
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if first.ID == "" {
		t.Error("Append did not assign an ID")
	}
	second, err := s.Append(ctx, r2)
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if first.ID == second.ID {
		t.Error("Append assigned duplicate IDs")
	}

	items, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("List returned %d items, want 2", len(items))
	}
	if items[0].Amount != 35 || items[1].Amount != 20 {
		t.Errorf("List order changed: %v", items)
	}
}

func TestAppendRejectsInvalid(t *testing.T) {
	s := New()
	bad := core.ExpenseRecord{Date: "2024-03-15", Amount: 0, Category: core.CategoryFood, Note: "x"}
	if _, err := s.Append(context.Background(), bad); !errors.Is(err, core.ErrInvalidAmount) {
		t.Fatalf("Append = %v, want ErrInvalidAmount", err)
	}
}

func TestListReturnsCopy(t *testing.T) {
	s := New()
	ctx := context.Background()
	_, err := s.Append(ctx, core.ExpenseRecord{Date: "2024-03-15", Amount: 35, Category: core.CategoryFood, Note: "午餐"})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	items, _ := s.List(ctx)
	items[0].Amount = 999

	again, _ := s.List(ctx)
	if again[0].Amount != 35 {
		t.Error("List exposed internal storage")
	}
}
