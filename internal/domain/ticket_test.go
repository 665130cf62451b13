package domain

import (
	"testing"
	"time"
)

func TestNewTicket_CanonicalForm(t *testing.T) {
	a := NewTicket([]int{31, 3, 19, 7, 25, 12}, 4)
	b := NewTicket([]int{3, 7, 12, 19, 25, 31}, 4)

	if a.Key() != b.Key() {
		t.Errorf("keys differ for same combination: %q vs %q", a.Key(), b.Key())
	}
	if a.Key() != "3,7,12,19,25,31|4" {
		t.Errorf("unexpected key: %q", a.Key())
	}

	c := NewTicket([]int{3, 7, 12, 19, 25, 31}, 5)
	if a.Key() == c.Key() {
		t.Error("tickets with different special numbers must not share a key")
	}
}

func TestNewTicket_CopiesInput(t *testing.T) {
	src := []int{5, 1, 3}
	tk := NewTicket(src, 1)
	src[0] = 99
	if tk.Regular[0] == 99 || tk.Regular[2] == 99 {
		t.Error("ticket shares memory with input slice")
	}
}

func TestDrawValidate(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		draw    Draw
		wantErr bool
	}{
		{"valid", Draw{Date: date, Regular: []int{1, 5, 9, 14, 22, 37}, Special: 3}, false},
		{"too few numbers", Draw{Date: date, Regular: []int{1, 5, 9}, Special: 3}, true},
		{"out of range", Draw{Date: date, Regular: []int{1, 5, 9, 14, 22, 38}, Special: 3}, true},
		{"duplicate", Draw{Date: date, Regular: []int{1, 5, 9, 14, 22, 22}, Special: 3}, true},
		{"bad special", Draw{Date: date, Regular: []int{1, 5, 9, 14, 22, 37}, Special: 8}, true},
	}
	for _, tt := range tests {
		err := tt.draw.Validate(Israeli)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestWindow_Clamps(t *testing.T) {
	draws := make([]Draw, 5)
	if got := len(Window(draws, 3)); got != 3 {
		t.Errorf("Window(5, 3) = %d draws, want 3", got)
	}
	if got := len(Window(draws, 200)); got != 5 {
		t.Errorf("Window(5, 200) = %d draws, want 5", got)
	}
	if got := len(Window(draws, -1)); got != 0 {
		t.Errorf("Window(5, -1) = %d draws, want 0", got)
	}
}
