package handlers

import (
	"testing"

	"hrdesk/internal/transport/http/shared"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	got := paginate(items, shared.Pagination{Limit: 2, Offset: 0})
	if len(got) != 2 || got[0] != 1 {
		t.Fatalf("first page = %v", got)
	}

	got = paginate(items, shared.Pagination{Limit: 2, Offset: 4})
	if len(got) != 1 || got[0] != 5 {
		t.Fatalf("last partial page = %v", got)
	}

	got = paginate(items, shared.Pagination{Limit: 2, Offset: 10})
	if len(got) != 0 {
		t.Fatalf("past-the-end page = %v", got)
	}
}
