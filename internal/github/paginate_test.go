package github

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// pageSource simulates an upstream listing with a fixed number of items.
type pageSource struct {
	total int
	calls []pageCall
}

type pageCall struct {
	page    int
	perPage int
}

func (s *pageSource) fetch(_ context.Context, page, perPage int) ([]int, error) {
	s.calls = append(s.calls, pageCall{page: page, perPage: perPage})

	start := (page - 1) * perPage
	var items []int
	for i := start; i < start+perPage && i < s.total; i++ {
		items = append(items, i)
	}
	return items, nil
}

func TestCollectPages(t *testing.T) {
	t.Run("non-positive limit issues no calls", func(t *testing.T) {
		for _, limit := range []int{0, -1, -100} {
			src := &pageSource{total: 50}

			items, err := collectPages(context.Background(), limit, src.fetch)
			if err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
			if len(items) != 0 {
				t.Errorf("limit=%d: expected empty result, got %d items", limit, len(items))
			}
			if len(src.calls) != 0 {
				t.Errorf("limit=%d: expected 0 calls, got %d", limit, len(src.calls))
			}
		}
	})

	t.Run("limit below page size makes a single exact request", func(t *testing.T) {
		src := &pageSource{total: 50}

		items, err := collectPages(context.Background(), 5, src.fetch)
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if len(items) != 5 {
			t.Errorf("Expected 5 items, got %d", len(items))
		}
		if len(src.calls) != 1 || src.calls[0].perPage != 5 {
			t.Errorf("Expected one call with perPage=5, got %+v", src.calls)
		}
	})

	t.Run("limit above page size pages through with remainder on last page", func(t *testing.T) {
		src := &pageSource{total: 500}

		items, err := collectPages(context.Background(), 150, src.fetch)
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if len(items) != 150 {
			t.Errorf("Expected 150 items, got %d", len(items))
		}

		expected := []pageCall{
			{page: 1, perPage: 100},
			{page: 2, perPage: 50},
		}
		if len(src.calls) != len(expected) {
			t.Fatalf("Expected %d calls, got %d: %+v", len(expected), len(src.calls), src.calls)
		}
		for i, call := range expected {
			if src.calls[i] != call {
				t.Errorf("Call %d: expected %+v, got %+v", i, call, src.calls[i])
			}
		}
	})

	t.Run("exact multiple of page size", func(t *testing.T) {
		src := &pageSource{total: 500}

		items, err := collectPages(context.Background(), 200, src.fetch)
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if len(items) != 200 {
			t.Errorf("Expected 200 items, got %d", len(items))
		}
		if len(src.calls) != 2 {
			t.Errorf("Expected 2 calls, got %d", len(src.calls))
		}
		for i, call := range src.calls {
			if call.perPage != 100 {
				t.Errorf("Call %d: expected perPage=100, got %d", i, call.perPage)
			}
		}
	})

	t.Run("short page stops collection early", func(t *testing.T) {
		src := &pageSource{total: 130}

		items, err := collectPages(context.Background(), 300, src.fetch)
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if len(items) != 130 {
			t.Errorf("Expected all 130 available items, got %d", len(items))
		}
		// Page 2 returned 30 of the requested 100, so page 3 is never issued.
		if len(src.calls) != 2 {
			t.Errorf("Expected 2 calls, got %d: %+v", len(src.calls), src.calls)
		}
	})

	t.Run("upstream exhausted on first page", func(t *testing.T) {
		src := &pageSource{total: 3}

		items, err := collectPages(context.Background(), 5, src.fetch)
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if len(items) != 3 {
			t.Errorf("Expected 3 items, got %d", len(items))
		}
		if len(src.calls) != 1 {
			t.Errorf("Expected 1 call, got %d", len(src.calls))
		}
	})

	t.Run("fetch error propagates", func(t *testing.T) {
		fail := errors.New("boom")
		calls := 0
		fetch := func(_ context.Context, page, perPage int) ([]int, error) {
			calls++
			if page == 2 {
				return nil, fail
			}
			items := make([]int, perPage)
			return items, nil
		}

		_, err := collectPages(context.Background(), 150, fetch)
		if !errors.Is(err, fail) {
			t.Fatalf("Expected fetch error, got: %v", err)
		}
		if calls != 2 {
			t.Errorf("Expected collection to stop at the failing page, got %d calls", calls)
		}
	})

	t.Run("returned item count follows the law", func(t *testing.T) {
		for _, tc := range []struct{ limit, total int }{
			{1, 1}, {10, 3}, {100, 250}, {250, 250}, {301, 250},
		} {
			t.Run(fmt.Sprintf("limit=%d,total=%d", tc.limit, tc.total), func(t *testing.T) {
				src := &pageSource{total: tc.total}

				items, err := collectPages(context.Background(), tc.limit, src.fetch)
				if err != nil {
					t.Fatalf("Expected no error, got: %v", err)
				}

				expected := tc.limit
				if tc.total < expected {
					expected = tc.total
				}
				if len(items) != expected {
					t.Errorf("Expected %d items, got %d", expected, len(items))
				}
			})
		}
	})
}
