package paginate

import (
	"reflect"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name                 string
		total, page, perPage int
		wantNumber, wantPgs  int
		wantStart, wantEnd   int
	}{
		{"first page", 20, 1, 6, 1, 4, 0, 6},
		{"last partial page", 20, 4, 6, 4, 4, 18, 20},
		{"page past end clamps", 20, 9, 6, 4, 4, 18, 20},
		{"page zero clamps", 20, 0, 6, 1, 4, 0, 6},
		{"empty list", 0, 3, 10, 1, 1, 0, 0},
		{"exact multiple", 30, 3, 10, 3, 3, 20, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.total, tt.page, tt.perPage)
			if p.Number != tt.wantNumber {
				t.Errorf("Number = %d, want %d", p.Number, tt.wantNumber)
			}
			if p.TotalPages != tt.wantPgs {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantPgs)
			}
			if p.Start != tt.wantStart || p.End != tt.wantEnd {
				t.Errorf("bounds = [%d:%d], want [%d:%d]", p.Start, p.End, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestSlice(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}

	got := Slice(items, New(len(items), 3, 10))
	want := []int{20, 21, 22}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Slice page 3 = %v, want %v", got, want)
	}

	if got := Slice(items, New(len(items), 1, 10)); len(got) != 10 || got[0] != 0 {
		t.Errorf("Slice page 1 = %v", got)
	}
	if got := Slice([]int{}, New(0, 1, 10)); len(got) != 0 {
		t.Errorf("Slice empty = %v", got)
	}
}

func TestShowing(t *testing.T) {
	from, to, total := New(23, 3, 10).Showing()
	if from != 21 || to != 23 || total != 23 {
		t.Errorf("Showing = %d, %d, %d, want 21, 23, 23", from, to, total)
	}
	from, to, total = New(0, 1, 10).Showing()
	if from != 0 || to != 0 || total != 0 {
		t.Errorf("Showing empty = %d, %d, %d", from, to, total)
	}
}

func TestHasPrevNext(t *testing.T) {
	p := New(25, 2, 10)
	if !p.HasPrev() || !p.HasNext() {
		t.Errorf("page 2 of 3: HasPrev=%v HasNext=%v", p.HasPrev(), p.HasNext())
	}
	if New(25, 1, 10).HasPrev() {
		t.Error("page 1 should not have prev")
	}
	if New(25, 3, 10).HasNext() {
		t.Error("last page should not have next")
	}
}

func pages(links []Link) []int {
	out := make([]int, 0, len(links))
	for _, l := range links {
		if l.Ellipsis {
			out = append(out, 0)
			continue
		}
		out = append(out, l.Page)
	}
	return out
}

func TestLinks(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		total int
		want  []int // 0 marks an ellipsis
	}{
		{"single page", 1, 5, []int{1}},
		{"three pages", 2, 30, []int{1, 2, 3}},
		{"middle of ten", 5, 100, []int{1, 0, 4, 5, 6, 0, 10}},
		{"start of ten", 1, 100, []int{1, 2, 0, 10}},
		{"end of ten", 10, 100, []int{1, 0, 9, 10}},
		{"near start", 3, 100, []int{1, 2, 3, 4, 0, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pages(New(tt.total, tt.page, 10).Links())
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Links = %v, want %v", got, tt.want)
			}
		})
	}

	for _, l := range New(100, 5, 10).Links() {
		if l.Current && l.Page != 5 {
			t.Errorf("current link = %d, want 5", l.Page)
		}
	}
}
